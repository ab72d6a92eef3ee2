package service

import (
	"context"
	"errors"
	"testing"

	"papertrade/internal/domain"
	mock_service "papertrade/internal/service/mocks"
	"papertrade/internal/sentiment"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_NewsService_GetMarketNews(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches sentiment to provider articles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockMarketNewsProvider(ctrl)
		provider.EXPECT().GetTopBusinessHeadlines(5).Return([]domain.NewsArticle{
			{Headline: "Markets surge on strong profit growth"},
			{Headline: "Stocks crash amid banking crisis"},
		}, nil)

		service := NewNewsService(provider, nil)
		articles, degraded := service.GetMarketNews(ctx, 5)
		require.False(t, degraded)
		require.Len(t, articles, 2)
		require.Equal(t, sentiment.Label_Positive, articles[0].Sentiment.Label)
		require.Equal(t, sentiment.Label_Negative, articles[1].Sentiment.Label)
	})

	t.Run("provider failure degrades to synthetic articles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockMarketNewsProvider(ctrl)
		provider.EXPECT().GetTopBusinessHeadlines(3).Return(nil, errors.New("down"))

		service := NewNewsService(provider, nil)
		articles, degraded := service.GetMarketNews(ctx, 3)
		require.True(t, degraded)
		require.Len(t, articles, 3)
		for _, article := range articles {
			require.NotEmpty(t, article.Headline)
			require.NotEmpty(t, article.Sentiment.Label)
		}
	})

	t.Run("no provider configured degrades", func(t *testing.T) {
		service := NewNewsService(nil, nil)
		articles, degraded := service.GetMarketNews(ctx, 2)
		require.True(t, degraded)
		require.Len(t, articles, 2)
	})
}

func Test_NewsService_GetStockNews(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the symbol through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockStockNewsProvider(ctrl)
		provider.EXPECT().GetCompanyNews("AAPL", 5).Return([]domain.NewsArticle{
			{Headline: "Apple beats on earnings, shares rally"},
		}, nil)

		service := NewNewsService(nil, provider)
		articles, degraded := service.GetStockNews(ctx, "AAPL", 5)
		require.False(t, degraded)
		require.Len(t, articles, 1)
		require.Equal(t, sentiment.Label_Positive, articles[0].Sentiment.Label)
	})

	t.Run("symbol-seeded fallback is deterministic", func(t *testing.T) {
		service := NewNewsService(nil, nil)
		first, degraded := service.GetStockNews(ctx, "AAPL", 3)
		require.True(t, degraded)
		second, _ := service.GetStockNews(ctx, "AAPL", 3)
		require.Equal(t, first[0].Headline, second[0].Headline)
	})
}
