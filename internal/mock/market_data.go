// Package mock generates synthetic market data. It backs the degraded
// mode of every data service: when an upstream provider fails, the
// dashboard stays populated with plausible numbers instead of erroring.
package mock

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
	"time"

	"papertrade/internal/domain"
	"papertrade/internal/util"
)

// Source produces pseudo-random market data. A Source built with a fixed
// seed is fully deterministic, which is how tests pin down degraded-mode
// output.
type Source struct {
	rng *rand.Rand
	now func() time.Time
}

func NewSource(seed int64) *Source {
	return &Source{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// NewSymbolSource seeds from the symbol itself so repeated fallbacks for
// one ticker stay self-consistent within a session.
func NewSymbolSource(symbol string) *Source {
	h := fnv.New64a()
	h.Write([]byte(strings.ToUpper(symbol)))
	return NewSource(int64(h.Sum64()))
}

func (s *Source) Quote(symbol string) domain.Quote {
	basePrice := s.rng.Float64()*500 + 50
	change := (s.rng.Float64() - 0.5) * 10

	return domain.Quote{
		Symbol:        strings.ToUpper(symbol),
		CurrentPrice:  round2(basePrice),
		Change:        round2(change),
		ChangePercent: round2(change / basePrice * 100),
		High:          round2(basePrice + s.rng.Float64()*5),
		Low:           round2(basePrice - s.rng.Float64()*5),
		Open:          round2(basePrice - s.rng.Float64()*3),
		PreviousClose: round2(basePrice - change),
		Timestamp:     s.now().UTC(),
	}
}

// HistoricalData walks ~100 days back from today, oldest bar first.
func (s *Source) HistoricalData(symbol string, bars int) []domain.Candle {
	if bars <= 0 {
		bars = 100
	}
	basePrice := s.rng.Float64()*500 + 50
	today := s.now().UTC().Truncate(24 * time.Hour)

	out := make([]domain.Candle, 0, bars)
	for i := bars - 1; i >= 0; i-- {
		price := basePrice + (s.rng.Float64()-0.5)*20
		out = append(out, domain.Candle{
			Date:   today.AddDate(0, 0, -i),
			Open:   round2(price),
			High:   round2(price + s.rng.Float64()*5),
			Low:    round2(price - s.rng.Float64()*5),
			Close:  round2(price + (s.rng.Float64()-0.5)*3),
			Volume: int64(s.rng.Intn(10000000)),
		})
	}
	return out
}

func (s *Source) CompanyProfile(symbol string) domain.CompanyProfile {
	symbol = strings.ToUpper(symbol)

	return domain.CompanyProfile{
		Symbol:            symbol,
		Name:              util.StrPointer(fmt.Sprintf("%s Inc.", symbol)),
		Country:           util.StrPointer("US"),
		Currency:          util.StrPointer("USD"),
		Exchange:          util.StrPointer("NASDAQ"),
		Industry:          util.StrPointer("Technology"),
		MarketCap:         util.FloatPointer(s.rng.Float64() * 1e12),
		SharesOutstanding: util.FloatPointer(s.rng.Float64() * 1e9),
		WebURL:            util.StrPointer(fmt.Sprintf("https://www.%s.com", strings.ToLower(symbol))),
	}
}

var mockHeadlines = []struct {
	headline string
	summary  string
}{
	{"Markets rally as tech stocks surge on strong earnings", "Major indices advanced after better than expected quarterly results across the technology sector."},
	{"Fed holds rates steady, signals caution on inflation", "Policymakers left the benchmark rate unchanged and flagged continued uncertainty around price pressures."},
	{"Oil prices slide amid demand concerns", "Crude fell as traders weighed weak industrial data against supply forecasts."},
	{"Chipmakers jump on record data center demand", "Semiconductor names posted strong gains driven by accelerating AI infrastructure spending."},
	{"Retail sales miss estimates, consumer outlook uncertain", "Spending figures came in below forecasts, raising concern about the strength of the consumer."},
	{"Banking sector gains momentum after upbeat guidance", "Large lenders advanced on improved net interest income projections."},
}

func (s *Source) MarketNews(limit int) []domain.NewsArticle {
	if limit <= 0 || limit > len(mockHeadlines) {
		limit = len(mockHeadlines)
	}

	out := make([]domain.NewsArticle, 0, limit)
	for i := 0; i < limit; i++ {
		item := mockHeadlines[i]
		out = append(out, domain.NewsArticle{
			ID:          fmt.Sprintf("mock-%d", i),
			Headline:    item.headline,
			Summary:     item.summary,
			Source:      "Simulated Wire",
			URL:         "https://example.com/news",
			PublishedAt: s.now().UTC().Add(-time.Duration(i) * time.Hour),
		})
	}
	return out
}

func (s *Source) StockNews(symbol string, limit int) []domain.NewsArticle {
	articles := s.MarketNews(limit)
	for i := range articles {
		articles[i].Headline = fmt.Sprintf("%s: %s", strings.ToUpper(symbol), articles[i].Headline)
	}
	return articles
}

var mockCoins = map[string]struct {
	symbol string
	name   string
	rank   int
}{
	"bitcoin":  {"BTC", "Bitcoin", 1},
	"ethereum": {"ETH", "Ethereum", 2},
	"cardano":  {"ADA", "Cardano", 9},
	"solana":   {"SOL", "Solana", 5},
	"dogecoin": {"DOGE", "Dogecoin", 8},
}

func (s *Source) CryptoPrices(ids []string) []domain.CryptoPrice {
	out := make([]domain.CryptoPrice, 0, len(ids))
	for _, id := range ids {
		coin, ok := mockCoins[strings.ToLower(id)]
		if !ok {
			coin.symbol = strings.ToUpper(id)
			coin.name = capitalize(id)
			coin.rank = 50 + s.rng.Intn(200)
		}
		price := s.rng.Float64() * 50000
		change := (s.rng.Float64() - 0.5) * price * 0.1
		out = append(out, domain.CryptoPrice{
			ID:                    strings.ToLower(id),
			Symbol:                coin.symbol,
			Name:                  coin.name,
			CurrentPrice:          round2(price),
			MarketCap:             round2(price * 19000000),
			MarketCapRank:         coin.rank,
			PriceChange24h:        round2(change),
			PriceChangePercent24h: round2(change / price * 100),
			High24h:               round2(price * 1.05),
			Low24h:                round2(price * 0.95),
			Volume24h:             round2(price * 500000),
		})
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
