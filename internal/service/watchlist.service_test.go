package service

import (
	"context"
	"testing"

	mock_store "papertrade/internal/store/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestWatchlistService(t *testing.T, saved []string) WatchlistService {
	ctrl := gomock.NewController(t)
	store := mock_store.NewMockStore(ctrl)
	store.EXPECT().LoadWatchlist().Return(saved, nil)
	store.EXPECT().SaveWatchlist(gomock.Any()).Return(nil).AnyTimes()
	return NewWatchlistService(context.Background(), store)
}

func Test_WatchlistService(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store seeds the default list", func(t *testing.T) {
		service := newTestWatchlistService(t, nil)
		require.Equal(t, DefaultWatchlist, service.List(ctx))
	})

	t.Run("saved list wins over the default", func(t *testing.T) {
		service := newTestWatchlistService(t, []string{"NVDA"})
		require.Equal(t, []string{"NVDA"}, service.List(ctx))
	})

	t.Run("add normalizes to uppercase", func(t *testing.T) {
		service := newTestWatchlistService(t, []string{})
		symbols := service.Add(ctx, " nvda ")
		require.Equal(t, []string{"NVDA"}, symbols)
	})

	t.Run("add is idempotent", func(t *testing.T) {
		service := newTestWatchlistService(t, []string{"NVDA"})
		symbols := service.Add(ctx, "nvda")
		require.Equal(t, []string{"NVDA"}, symbols)
	})

	t.Run("add ignores blank symbols", func(t *testing.T) {
		service := newTestWatchlistService(t, []string{"NVDA"})
		symbols := service.Add(ctx, "   ")
		require.Equal(t, []string{"NVDA"}, symbols)
	})

	t.Run("remove preserves order of the rest", func(t *testing.T) {
		service := newTestWatchlistService(t, []string{"AAPL", "MSFT", "NVDA"})
		symbols := service.Remove(ctx, "msft")
		require.Equal(t, []string{"AAPL", "NVDA"}, symbols)
	})

	t.Run("remove of an absent symbol is a no-op", func(t *testing.T) {
		service := newTestWatchlistService(t, []string{"AAPL"})
		symbols := service.Remove(ctx, "MSFT")
		require.Equal(t, []string{"AAPL"}, symbols)
	})
}
