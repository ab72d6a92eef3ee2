package calc

import (
	"math"
	"sort"

	"papertrade/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// GainLoss describes one holding marked against a current price.
type GainLoss struct {
	CostBasis       decimal.Decimal `json:"costBasis"`
	CurrentValue    decimal.Decimal `json:"currentValue"`
	GainLoss        decimal.Decimal `json:"gainLoss"`
	GainLossPercent decimal.Decimal `json:"gainLossPercent"`
}

// HoldingGainLoss marks a holding against currentPrice. A missing or zero
// price yields a zeroed result rather than an error so the dashboard can
// render before the first quote refresh lands.
func HoldingGainLoss(holding *domain.Holding, currentPrice decimal.Decimal) GainLoss {
	if holding == nil || !currentPrice.IsPositive() {
		return GainLoss{}
	}

	costBasis := holding.CostBasis()
	currentValue := currentPrice.Mul(decimal.NewFromInt(holding.Quantity))
	gainLoss := currentValue.Sub(costBasis)

	gainLossPercent := decimal.Zero
	if costBasis.IsPositive() {
		gainLossPercent = gainLoss.Div(costBasis)
	}

	return GainLoss{
		CostBasis:       costBasis,
		CurrentValue:    currentValue,
		GainLoss:        gainLoss,
		GainLossPercent: gainLossPercent,
	}
}

// PortfolioValue is cash plus the market value of all holdings. Symbols
// without a price contribute zero.
func PortfolioValue(holdings map[string]*domain.Holding, prices map[string]decimal.Decimal, cash decimal.Decimal) decimal.Decimal {
	total := cash
	for symbol, holding := range holdings {
		if price, ok := prices[symbol]; ok {
			total = total.Add(price.Mul(decimal.NewFromInt(holding.Quantity)))
		}
	}
	return total
}

// TotalGainLoss aggregates cost basis and current value across all
// holdings, treating cash spent as part of the basis.
func TotalGainLoss(holdings map[string]*domain.Holding, prices map[string]decimal.Decimal) GainLoss {
	totalCostBasis := decimal.Zero
	totalCurrentValue := decimal.Zero

	for symbol, holding := range holdings {
		totalCostBasis = totalCostBasis.Add(holding.CostBasis())
		if price, ok := prices[symbol]; ok {
			totalCurrentValue = totalCurrentValue.Add(price.Mul(decimal.NewFromInt(holding.Quantity)))
		}
	}

	gainLoss := totalCurrentValue.Sub(totalCostBasis)
	gainLossPercent := decimal.Zero
	if totalCostBasis.IsPositive() {
		gainLossPercent = gainLoss.Div(totalCostBasis)
	}

	return GainLoss{
		CostBasis:       totalCostBasis,
		CurrentValue:    totalCurrentValue,
		GainLoss:        gainLoss,
		GainLossPercent: gainLossPercent,
	}
}

// AllocationEntry is one holding's share of the invested (non-cash)
// portfolio value.
type AllocationEntry struct {
	Symbol       string          `json:"symbol"`
	Quantity     int64           `json:"quantity"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	HoldingValue decimal.Decimal `json:"holdingValue"`
	Allocation   decimal.Decimal `json:"allocation"`
}

// Allocation computes per-holding allocation percentages, sorted by
// descending allocation with symbol as the deterministic tiebreak. Cash is
// excluded from the denominator. An empty book or all-zero prices yields
// an empty slice.
func Allocation(holdings map[string]*domain.Holding, prices map[string]decimal.Decimal) []AllocationEntry {
	totalValue := decimal.Zero
	for symbol, holding := range holdings {
		if price, ok := prices[symbol]; ok {
			totalValue = totalValue.Add(price.Mul(decimal.NewFromInt(holding.Quantity)))
		}
	}
	if !totalValue.IsPositive() {
		return []AllocationEntry{}
	}

	hundred := decimal.NewFromInt(100)
	out := []AllocationEntry{}
	for symbol, holding := range holdings {
		price := prices[symbol]
		holdingValue := price.Mul(decimal.NewFromInt(holding.Quantity))
		out = append(out, AllocationEntry{
			Symbol:       symbol,
			Quantity:     holding.Quantity,
			CurrentPrice: price,
			HoldingValue: holdingValue,
			Allocation:   holdingValue.Div(totalValue).Mul(hundred),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Allocation.Equal(out[j].Allocation) {
			return out[i].Allocation.GreaterThan(out[j].Allocation)
		}
		return out[i].Symbol < out[j].Symbol
	})

	return out
}

// RiskMetrics summarizes portfolio concentration. The diversification
// score is a display heuristic, not a statistically rigorous risk
// measure: 0 with no holdings, 20 with exactly one, otherwise
// min(100, count*10 - largestAllocation/2), rounded.
type RiskMetrics struct {
	DiversificationScore int             `json:"diversificationScore"`
	HoldingsCount        int             `json:"holdingsCount"`
	LargestPosition      string          `json:"largestPosition"`
	LargestPositionPct   decimal.Decimal `json:"largestPositionPercent"`
}

func ComputeRiskMetrics(holdings map[string]*domain.Holding, prices map[string]decimal.Decimal) RiskMetrics {
	allocation := Allocation(holdings, prices)

	out := RiskMetrics{
		HoldingsCount:   len(holdings),
		LargestPosition: "N/A",
	}

	if len(allocation) > 0 {
		out.LargestPosition = allocation[0].Symbol
		out.LargestPositionPct = allocation[0].Allocation
	}

	switch {
	case len(holdings) == 0:
		out.DiversificationScore = 0
	case len(holdings) == 1:
		out.DiversificationScore = 20
	default:
		score := float64(len(holdings)*10) - out.LargestPositionPct.InexactFloat64()/2
		out.DiversificationScore = int(math.Round(math.Min(100, score)))
	}

	return out
}

// MovingAverage returns the simple moving average of the last period
// values, or false when there is not enough data.
func MovingAverage(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	sum := 0.0
	for _, v := range values[len(values)-period:] {
		sum += v
	}
	return sum / float64(period), true
}

// PriceChange returns absolute and fractional change between two prices.
func PriceChange(currentPrice, previousPrice float64) (change float64, changePercent float64) {
	if currentPrice == 0 || previousPrice == 0 {
		return 0, 0
	}
	change = currentPrice - previousPrice
	return change, change / previousPrice
}

// AnnualizedReturn converts a holding-period return into an annual rate.
func AnnualizedReturn(currentValue, initialValue float64, daysHeld int) float64 {
	if initialValue == 0 || daysHeld == 0 {
		return 0
	}
	totalReturn := (currentValue - initialValue) / initialValue
	yearsHeld := float64(daysHeld) / 365
	return math.Pow(1+totalReturn, 1/yearsHeld) - 1
}

// tradingDaysPerYear scales a daily stdev to an annual figure.
const tradingDaysPerYear = 252

// Volatility is the annualized sample standard deviation of day-over-day
// percent returns of a close series. Fewer than three bars is not enough
// to say anything.
func Volatility(candles []domain.Candle) (float64, error) {
	if len(candles) < 3 {
		return 0, nil
	}

	returns := make([]float64, 0, len(candles)-1)
	for i := 1; i < len(candles); i++ {
		prev := candles[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, (candles[i].Close-prev)/prev*100)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, err
	}

	return stdev * math.Sqrt(tradingDaysPerYear), nil
}
