package service

import (
	"context"
	"errors"
	"testing"

	"papertrade/internal/domain"
	mock_service "papertrade/internal/service/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_MarketDataService_GetQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("first provider wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := mock_service.NewMockQuoteProvider(ctrl)
		second := mock_service.NewMockQuoteProvider(ctrl)
		first.EXPECT().GetQuote("AAPL").Return(&domain.Quote{Symbol: "AAPL", CurrentPrice: 150}, nil)

		service := NewMarketDataService([]QuoteProvider{first, second}, nil, nil, nil)
		q, degraded := service.GetQuote(ctx, "aapl")
		require.False(t, degraded)
		require.Equal(t, "AAPL", q.Symbol)
		require.InDelta(t, 150, q.CurrentPrice, 1e-9)
	})

	t.Run("falls through to the next provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := mock_service.NewMockQuoteProvider(ctrl)
		second := mock_service.NewMockQuoteProvider(ctrl)
		first.EXPECT().GetQuote("AAPL").Return(nil, errors.New("rate limited"))
		second.EXPECT().GetQuote("AAPL").Return(&domain.Quote{Symbol: "AAPL", CurrentPrice: 151}, nil)

		service := NewMarketDataService([]QuoteProvider{first, second}, nil, nil, nil)
		q, degraded := service.GetQuote(ctx, "AAPL")
		require.False(t, degraded)
		require.InDelta(t, 151, q.CurrentPrice, 1e-9)
	})

	t.Run("all providers dead degrades to synthetic data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockQuoteProvider(ctrl)
		provider.EXPECT().GetQuote("AAPL").Return(nil, errors.New("down")).Times(2)

		service := NewMarketDataService([]QuoteProvider{provider}, nil, nil, nil)
		q1, degraded := service.GetQuote(ctx, "AAPL")
		require.True(t, degraded)
		require.Equal(t, "AAPL", q1.Symbol)
		require.Greater(t, q1.CurrentPrice, 0.0)

		// symbol-seeded fallback is deterministic within a session
		q2, degraded := service.GetQuote(ctx, "AAPL")
		require.True(t, degraded)
		require.InDelta(t, q1.CurrentPrice, q2.CurrentPrice, 1e-9)
	})

	t.Run("no providers at all still serves quotes", func(t *testing.T) {
		service := NewMarketDataService(nil, nil, nil, nil)
		q, degraded := service.GetQuote(ctx, "MSFT")
		require.True(t, degraded)
		require.Equal(t, "MSFT", q.Symbol)
	})
}

func Test_MarketDataService_GetMultipleQuotes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	provider := mock_service.NewMockQuoteProvider(ctrl)
	provider.EXPECT().GetQuote("AAPL").Return(&domain.Quote{Symbol: "AAPL", CurrentPrice: 150}, nil)
	provider.EXPECT().GetQuote("MSFT").Return(nil, errors.New("down"))

	service := NewMarketDataService([]QuoteProvider{provider}, nil, nil, nil)
	quotes, degraded := service.GetMultipleQuotes(ctx, []string{"AAPL", "MSFT"})

	// one synthetic symbol marks the whole batch degraded
	require.True(t, degraded)
	require.Len(t, quotes, 2)
	require.InDelta(t, 150, quotes["AAPL"].CurrentPrice, 1e-9)
	require.Greater(t, quotes["MSFT"].CurrentPrice, 0.0)
}

func Test_MarketDataService_GetHistoricalData(t *testing.T) {
	ctx := context.Background()

	t.Run("provider data passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockHistoryProvider(ctrl)
		provider.EXPECT().GetTimeSeries("AAPL", domain.Interval_Daily).
			Return([]domain.Candle{{Close: 100}, {Close: 101}}, nil)

		service := NewMarketDataService(nil, []HistoryProvider{provider}, nil, nil)
		candles, degraded := service.GetHistoricalData(ctx, "AAPL", domain.Interval_Daily)
		require.False(t, degraded)
		require.Len(t, candles, 2)
	})

	t.Run("empty provider result falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockHistoryProvider(ctrl)
		provider.EXPECT().GetTimeSeries("AAPL", domain.Interval_Daily).
			Return([]domain.Candle{}, nil)

		service := NewMarketDataService(nil, []HistoryProvider{provider}, nil, nil)
		candles, degraded := service.GetHistoricalData(ctx, "AAPL", domain.Interval_Daily)
		require.True(t, degraded)
		require.NotEmpty(t, candles)
	})
}

func Test_MarketDataService_SearchSymbols(t *testing.T) {
	ctx := context.Background()

	t.Run("no searcher configured yields empty result", func(t *testing.T) {
		service := NewMarketDataService(nil, nil, nil, nil)
		matches, err := service.SearchSymbols(ctx, "apple")
		require.NoError(t, err)
		require.Empty(t, matches)
	})

	t.Run("searcher failure yields empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		searcher := mock_service.NewMockSymbolSearcher(ctrl)
		searcher.EXPECT().SearchSymbols("apple").Return(nil, errors.New("down"))

		service := NewMarketDataService(nil, nil, searcher, nil)
		matches, err := service.SearchSymbols(ctx, "apple")
		require.NoError(t, err)
		require.Empty(t, matches)
	})

	t.Run("matches pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		searcher := mock_service.NewMockSymbolSearcher(ctrl)
		searcher.EXPECT().SearchSymbols("apple").
			Return([]domain.SymbolMatch{{Symbol: "AAPL", Name: "Apple Inc"}}, nil)

		service := NewMarketDataService(nil, nil, searcher, nil)
		matches, err := service.SearchSymbols(ctx, "apple")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		require.Equal(t, "AAPL", matches[0].Symbol)
	})
}

func Test_MarketDataService_GetCompanyProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("provider failure degrades to synthetic profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockProfileProvider(ctrl)
		provider.EXPECT().GetCompanyProfile("AAPL").Return(nil, errors.New("down"))

		service := NewMarketDataService(nil, nil, nil, provider)
		profile, degraded := service.GetCompanyProfile(ctx, "AAPL")
		require.True(t, degraded)
		require.Equal(t, "AAPL", profile.Symbol)
	})

	t.Run("fundamentals degrade to empty fields", func(t *testing.T) {
		service := NewMarketDataService(nil, nil, nil, nil)
		fundamentals, degraded := service.GetFundamentals(ctx, "AAPL")
		require.True(t, degraded)
		require.Nil(t, fundamentals.PERatio)
	})
}
