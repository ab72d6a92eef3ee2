package calc

import (
	"testing"
	"time"

	"papertrade/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newHolding(symbol string, quantity int64, averageCost float64) *domain.Holding {
	return &domain.Holding{
		Symbol:       symbol,
		Quantity:     quantity,
		AverageCost:  decimal.NewFromFloat(averageCost),
		PurchaseDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func Test_HoldingGainLoss(t *testing.T) {
	t.Run("gain against current price", func(t *testing.T) {
		holding := newHolding("AAPL", 10, 5)
		result := HoldingGainLoss(holding, decimal.NewFromInt(8))

		require.True(t, result.CostBasis.Equal(decimal.NewFromInt(50)))
		require.True(t, result.CurrentValue.Equal(decimal.NewFromInt(80)))
		require.True(t, result.GainLoss.Equal(decimal.NewFromInt(30)))
		require.True(t, result.GainLossPercent.Equal(decimal.NewFromFloat(0.6)))
	})

	t.Run("zero price yields zeroed result", func(t *testing.T) {
		holding := newHolding("AAPL", 10, 5)
		result := HoldingGainLoss(holding, decimal.Zero)
		require.True(t, result.GainLoss.IsZero())
		require.True(t, result.CurrentValue.IsZero())
	})

	t.Run("nil holding yields zeroed result", func(t *testing.T) {
		result := HoldingGainLoss(nil, decimal.NewFromInt(8))
		require.True(t, result.GainLoss.IsZero())
	})
}

func Test_PortfolioValue(t *testing.T) {
	holdings := map[string]*domain.Holding{
		"AAPL": newHolding("AAPL", 10, 100),
		"MSFT": newHolding("MSFT", 5, 200),
	}

	t.Run("cash plus market value", func(t *testing.T) {
		prices := map[string]decimal.Decimal{
			"AAPL": decimal.NewFromInt(150),
			"MSFT": decimal.NewFromInt(300),
		}
		total := PortfolioValue(holdings, prices, decimal.NewFromInt(1000))
		// 1000 + 10*150 + 5*300
		require.True(t, total.Equal(decimal.NewFromInt(4000)))
	})

	t.Run("symbols without a price contribute zero", func(t *testing.T) {
		prices := map[string]decimal.Decimal{
			"AAPL": decimal.NewFromInt(150),
		}
		total := PortfolioValue(holdings, prices, decimal.NewFromInt(1000))
		require.True(t, total.Equal(decimal.NewFromInt(2500)))
	})
}

func Test_TotalGainLoss(t *testing.T) {
	holdings := map[string]*domain.Holding{
		"AAPL": newHolding("AAPL", 10, 5),
		"MSFT": newHolding("MSFT", 2, 100),
	}
	prices := map[string]decimal.Decimal{
		"AAPL": decimal.NewFromInt(8),
		"MSFT": decimal.NewFromInt(90),
	}

	result := TotalGainLoss(holdings, prices)
	require.True(t, result.CostBasis.Equal(decimal.NewFromInt(250)))
	require.True(t, result.CurrentValue.Equal(decimal.NewFromInt(260)))
	require.True(t, result.GainLoss.Equal(decimal.NewFromInt(10)))
	require.True(t, result.GainLossPercent.Equal(decimal.NewFromFloat(0.04)))
}

func Test_Allocation(t *testing.T) {
	t.Run("two equal holdings split 50/50", func(t *testing.T) {
		holdings := map[string]*domain.Holding{
			"AAPL": newHolding("AAPL", 10, 100),
			"MSFT": newHolding("MSFT", 5, 200),
		}
		prices := map[string]decimal.Decimal{
			"AAPL": decimal.NewFromInt(100),
			"MSFT": decimal.NewFromInt(200),
		}

		entries := Allocation(holdings, prices)
		require.Len(t, entries, 2)
		require.True(t, entries[0].Allocation.Equal(decimal.NewFromInt(50)))
		require.True(t, entries[1].Allocation.Equal(decimal.NewFromInt(50)))
		// equal allocations fall back to symbol order
		require.Equal(t, "AAPL", entries[0].Symbol)
		require.Equal(t, "MSFT", entries[1].Symbol)
	})

	t.Run("sorted by descending allocation", func(t *testing.T) {
		holdings := map[string]*domain.Holding{
			"AAPL": newHolding("AAPL", 1, 100),
			"MSFT": newHolding("MSFT", 3, 100),
		}
		prices := map[string]decimal.Decimal{
			"AAPL": decimal.NewFromInt(100),
			"MSFT": decimal.NewFromInt(100),
		}

		entries := Allocation(holdings, prices)
		require.Len(t, entries, 2)
		require.Equal(t, "MSFT", entries[0].Symbol)
		require.True(t, entries[0].Allocation.Equal(decimal.NewFromInt(75)))
	})

	t.Run("no holdings yields empty slice", func(t *testing.T) {
		entries := Allocation(map[string]*domain.Holding{}, map[string]decimal.Decimal{})
		require.Empty(t, entries)
	})

	t.Run("all-zero prices yields empty slice", func(t *testing.T) {
		holdings := map[string]*domain.Holding{
			"AAPL": newHolding("AAPL", 10, 100),
		}
		entries := Allocation(holdings, map[string]decimal.Decimal{})
		require.Empty(t, entries)
	})
}

func Test_ComputeRiskMetrics(t *testing.T) {
	t.Run("empty portfolio", func(t *testing.T) {
		result := ComputeRiskMetrics(map[string]*domain.Holding{}, map[string]decimal.Decimal{})
		require.Equal(t, 0, result.DiversificationScore)
		require.Equal(t, 0, result.HoldingsCount)
		require.Equal(t, "N/A", result.LargestPosition)
	})

	t.Run("single holding scores 20", func(t *testing.T) {
		holdings := map[string]*domain.Holding{
			"AAPL": newHolding("AAPL", 10, 100),
		}
		prices := map[string]decimal.Decimal{"AAPL": decimal.NewFromInt(100)}
		result := ComputeRiskMetrics(holdings, prices)
		require.Equal(t, 20, result.DiversificationScore)
		require.Equal(t, "AAPL", result.LargestPosition)
	})

	t.Run("score caps at 100", func(t *testing.T) {
		holdings := map[string]*domain.Holding{}
		prices := map[string]decimal.Decimal{}
		for _, symbol := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
			holdings[symbol] = newHolding(symbol, 1, 100)
			prices[symbol] = decimal.NewFromInt(100)
		}
		result := ComputeRiskMetrics(holdings, prices)
		require.Equal(t, 100, result.DiversificationScore)
	})

	t.Run("concentration lowers the score", func(t *testing.T) {
		holdings := map[string]*domain.Holding{
			"AAPL": newHolding("AAPL", 3, 100),
			"MSFT": newHolding("MSFT", 1, 100),
		}
		prices := map[string]decimal.Decimal{
			"AAPL": decimal.NewFromInt(100),
			"MSFT": decimal.NewFromInt(100),
		}
		// 2*10 - 75/2 = -17.5, rounded
		result := ComputeRiskMetrics(holdings, prices)
		require.Equal(t, -18, result.DiversificationScore)
		require.Equal(t, "AAPL", result.LargestPosition)
		require.True(t, result.LargestPositionPct.Equal(decimal.NewFromInt(75)))
	})
}

func Test_MovingAverage(t *testing.T) {
	t.Run("averages the trailing window", func(t *testing.T) {
		avg, ok := MovingAverage([]float64{1, 2, 3, 4, 5}, 3)
		require.True(t, ok)
		require.InDelta(t, 4, avg, 1e-9)
	})

	t.Run("not enough data", func(t *testing.T) {
		_, ok := MovingAverage([]float64{1, 2}, 3)
		require.False(t, ok)
	})

	t.Run("non-positive period", func(t *testing.T) {
		_, ok := MovingAverage([]float64{1, 2, 3}, 0)
		require.False(t, ok)
	})
}

func Test_PriceChange(t *testing.T) {
	change, changePercent := PriceChange(110, 100)
	require.InDelta(t, 10, change, 1e-9)
	require.InDelta(t, 0.1, changePercent, 1e-9)

	change, changePercent = PriceChange(110, 0)
	require.Zero(t, change)
	require.Zero(t, changePercent)
}

func Test_AnnualizedReturn(t *testing.T) {
	t.Run("one year is the plain return", func(t *testing.T) {
		result := AnnualizedReturn(110, 100, 365)
		require.InDelta(t, 0.1, result, 1e-9)
	})

	t.Run("half year compounds", func(t *testing.T) {
		result := AnnualizedReturn(110, 100, 182)
		require.Greater(t, result, 0.2)
	})

	t.Run("zero initial value", func(t *testing.T) {
		require.Zero(t, AnnualizedReturn(110, 0, 365))
	})
}

func Test_Volatility(t *testing.T) {
	t.Run("flat series has zero volatility", func(t *testing.T) {
		candles := []domain.Candle{
			{Close: 100}, {Close: 100}, {Close: 100}, {Close: 100},
		}
		vol, err := Volatility(candles)
		require.NoError(t, err)
		require.Zero(t, vol)
	})

	t.Run("fewer than three bars", func(t *testing.T) {
		vol, err := Volatility([]domain.Candle{{Close: 100}, {Close: 101}})
		require.NoError(t, err)
		require.Zero(t, vol)
	})

	t.Run("varying series is positive", func(t *testing.T) {
		candles := []domain.Candle{
			{Close: 100}, {Close: 102}, {Close: 99}, {Close: 103}, {Close: 101},
		}
		vol, err := Volatility(candles)
		require.NoError(t, err)
		require.Greater(t, vol, 0.0)
	})
}
