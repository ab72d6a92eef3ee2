package store

import (
	"testing"
	"time"

	"papertrade/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testPortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		Cash: decimal.NewFromInt(98500),
		Holdings: map[string]*domain.Holding{
			"AAPL": {
				Symbol:       "AAPL",
				Quantity:     10,
				AverageCost:  decimal.NewFromInt(150),
				PurchaseDate: time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC),
			},
		},
	}
}

func Test_fileStore_Portfolio(t *testing.T) {
	store := NewFileStore(t.TempDir())

	t.Run("missing key loads as nil", func(t *testing.T) {
		portfolio, err := store.LoadPortfolio()
		require.NoError(t, err)
		require.Nil(t, portfolio)
	})

	t.Run("round-trips", func(t *testing.T) {
		saved := testPortfolio()
		require.NoError(t, store.SavePortfolio(saved))

		loaded, err := store.LoadPortfolio()
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(saved, loaded))
	})

	t.Run("overwrites in place", func(t *testing.T) {
		emptied := domain.NewPortfolio()
		require.NoError(t, store.SavePortfolio(emptied))

		loaded, err := store.LoadPortfolio()
		require.NoError(t, err)
		require.True(t, loaded.Cash.Equal(domain.StartingCash))
		require.Empty(t, loaded.Holdings)
	})
}

func Test_fileStore_Watchlist(t *testing.T) {
	store := NewFileStore(t.TempDir())

	symbols, err := store.LoadWatchlist()
	require.NoError(t, err)
	require.Nil(t, symbols)

	require.NoError(t, store.SaveWatchlist([]string{"AAPL", "NVDA"}))
	symbols, err = store.LoadWatchlist()
	require.NoError(t, err)
	require.Equal(t, []string{"AAPL", "NVDA"}, symbols)
}

func Test_fileStore_Settings(t *testing.T) {
	store := NewFileStore(t.TempDir())

	settings, err := store.LoadSettings()
	require.NoError(t, err)
	require.Nil(t, settings)

	require.NoError(t, store.SaveSettings(domain.Settings{
		Theme:           "light",
		RefreshSeconds:  30,
		DefaultCurrency: "EUR",
	}))
	settings, err = store.LoadSettings()
	require.NoError(t, err)
	require.Equal(t, "light", settings.Theme)
	require.Equal(t, 30, settings.RefreshSeconds)
}

func Test_fileStore_Transactions(t *testing.T) {
	store := NewFileStore(t.TempDir())

	transactions := []domain.Transaction{
		{
			TransactionID: uuid.New(),
			Side:          domain.TransactionSide_Buy,
			Symbol:        "AAPL",
			Quantity:      10,
			Price:         decimal.NewFromInt(150),
			Amount:        decimal.NewFromInt(1500),
			CreatedAt:     time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC),
		},
	}
	require.NoError(t, store.SaveTransactions(transactions))

	loaded, err := store.LoadTransactions()
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(transactions, loaded))
}

func Test_fileStore_ExportImport(t *testing.T) {
	t.Run("full round-trip into a fresh store", func(t *testing.T) {
		source := NewFileStore(t.TempDir())
		require.NoError(t, source.SavePortfolio(testPortfolio()))
		require.NoError(t, source.SaveWatchlist([]string{"AAPL", "NVDA"}))
		require.NoError(t, source.SaveSettings(domain.DefaultSettings()))

		blob, err := source.ExportAll()
		require.NoError(t, err)

		target := NewFileStore(t.TempDir())
		require.NoError(t, target.ImportAll(blob))

		portfolio, err := target.LoadPortfolio()
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(testPortfolio(), portfolio))

		symbols, err := target.LoadWatchlist()
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL", "NVDA"}, symbols)
	})

	t.Run("partial blob only overwrites what it carries", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		require.NoError(t, store.SavePortfolio(testPortfolio()))

		require.NoError(t, store.ImportAll([]byte(`{"watchlist": ["TSLA"]}`)))

		portfolio, err := store.LoadPortfolio()
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(testPortfolio(), portfolio))

		symbols, err := store.LoadWatchlist()
		require.NoError(t, err)
		require.Equal(t, []string{"TSLA"}, symbols)
	})

	t.Run("malformed blob is rejected", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		require.Error(t, store.ImportAll([]byte("not json")))
	})
}

func Test_fileStore_Clear(t *testing.T) {
	store := NewFileStore(t.TempDir())
	require.NoError(t, store.SavePortfolio(testPortfolio()))
	require.NoError(t, store.SaveWatchlist([]string{"AAPL"}))

	require.NoError(t, store.Clear())

	portfolio, err := store.LoadPortfolio()
	require.NoError(t, err)
	require.Nil(t, portfolio)

	symbols, err := store.LoadWatchlist()
	require.NoError(t, err)
	require.Nil(t, symbols)

	// clearing an already-empty store is fine
	require.NoError(t, store.Clear())
}
