package repository

import (
	"testing"
	"time"

	"papertrade/internal/domain"

	"github.com/stretchr/testify/require"
)

func day(yearDay int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, yearDay)
}

func Test_Resample(t *testing.T) {
	t.Run("daily passes through untouched", func(t *testing.T) {
		daily := []domain.Candle{
			{Date: day(0), Close: 100},
			{Date: day(1), Close: 101},
		}
		require.Equal(t, daily, Resample(daily, domain.Interval_Daily))
	})

	t.Run("weekly buckets by ISO week", func(t *testing.T) {
		// Mon Jan 1 2024 through Mon Jan 8 2024 spans two ISO weeks
		daily := []domain.Candle{
			{Date: day(0), Open: 10, High: 12, Low: 9, Close: 11, Volume: 100},
			{Date: day(1), Open: 11, High: 15, Low: 10, Close: 14, Volume: 200},
			{Date: day(7), Open: 14, High: 16, Low: 13, Close: 15, Volume: 300},
		}

		weekly := Resample(daily, domain.Interval_Weekly)
		require.Len(t, weekly, 2)

		first := weekly[0]
		require.InDelta(t, 10, first.Open, 1e-9)
		require.InDelta(t, 15, first.High, 1e-9)
		require.InDelta(t, 9, first.Low, 1e-9)
		require.InDelta(t, 14, first.Close, 1e-9)
		require.EqualValues(t, 300, first.Volume)

		require.InDelta(t, 15, weekly[1].Close, 1e-9)
	})

	t.Run("monthly buckets by calendar month", func(t *testing.T) {
		daily := []domain.Candle{
			{Date: day(0), Close: 11},
			{Date: day(30), Close: 12},
			{Date: day(31), Close: 13},
		}

		monthly := Resample(daily, domain.Interval_Monthly)
		require.Len(t, monthly, 2)
		require.InDelta(t, 12, monthly[0].Close, 1e-9)
		require.InDelta(t, 13, monthly[1].Close, 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, Resample(nil, domain.Interval_Weekly))
	})
}
