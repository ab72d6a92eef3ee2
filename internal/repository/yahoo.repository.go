package repository

import (
	"fmt"
	"strings"
	"time"

	"papertrade/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
)

// YahooRepository serves quotes and historical bars from Yahoo Finance.
// It needs no API key, which makes it the default provider when no
// Finnhub or Alpha Vantage credentials are configured.
type YahooRepository interface {
	GetQuote(symbol string) (*domain.Quote, error)
	GetTimeSeries(symbol string, interval domain.Interval) ([]domain.Candle, error)
}

func NewYahooRepository() YahooRepository {
	return yahooRepositoryHandler{}
}

type yahooRepositoryHandler struct{}

func (h yahooRepositoryHandler) GetQuote(symbol string) (*domain.Quote, error) {
	symbol = strings.ToUpper(symbol)

	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return nil, fmt.Errorf("failed to get quote for %s: got 0 price", symbol)
	}

	return &domain.Quote{
		Symbol:        symbol,
		CurrentPrice:  q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		ChangePercent: q.RegularMarketChangePercent,
		High:          q.RegularMarketDayHigh,
		Low:           q.RegularMarketDayLow,
		Open:          q.RegularMarketOpen,
		PreviousClose: q.RegularMarketPreviousClose,
		Timestamp:     time.Now().UTC(),
	}, nil
}

// GetTimeSeries pulls roughly a year of daily bars and resamples to the
// requested interval, oldest-first.
func (h yahooRepositoryHandler) GetTimeSeries(symbol string, interval domain.Interval) ([]domain.Candle, error) {
	symbol = strings.ToUpper(symbol)
	end := time.Now().UTC()
	start := end.AddDate(-1, 0, 0)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	daily := []domain.Candle{}
	for iter.Next() {
		bar := iter.Bar()
		daily = append(daily, domain.Candle{
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Open:   bar.Open.InexactFloat64(),
			High:   bar.High.InexactFloat64(),
			Low:    bar.Low.InexactFloat64(),
			Close:  bar.Close.InexactFloat64(),
			Volume: int64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get bars for %s: %w", symbol, err)
	}
	if len(daily) == 0 {
		return nil, fmt.Errorf("no bars returned for %s", symbol)
	}

	return Resample(daily, interval), nil
}

// Resample aggregates daily bars into weekly or monthly buckets. Daily
// input (or an unknown interval) passes through untouched. Bars must be
// oldest-first.
func Resample(daily []domain.Candle, interval domain.Interval) []domain.Candle {
	var bucket func(t time.Time) string
	switch interval {
	case domain.Interval_Weekly:
		bucket = func(t time.Time) string {
			year, week := t.ISOWeek()
			return fmt.Sprintf("%d-%02d", year, week)
		}
	case domain.Interval_Monthly:
		bucket = func(t time.Time) string {
			return t.Format("2006-01")
		}
	default:
		return daily
	}

	out := []domain.Candle{}
	currentKey := ""
	for _, bar := range daily {
		key := bucket(bar.Date)
		if key != currentKey {
			out = append(out, bar)
			currentKey = key
			continue
		}

		last := &out[len(out)-1]
		last.Close = bar.Close
		last.Volume += bar.Volume
		if bar.High > last.High {
			last.High = bar.High
		}
		if bar.Low < last.Low {
			last.Low = bar.Low
		}
	}
	return out
}
