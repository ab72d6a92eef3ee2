package api

import (
	"testing"
	"time"

	"papertrade/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_transactionCsvRows(t *testing.T) {
	createdAt := time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		{
			TransactionID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Side:          domain.TransactionSide_Buy,
			Symbol:        "AAPL",
			Quantity:      10,
			Price:         decimal.NewFromFloat(150.5),
			Amount:        decimal.NewFromInt(1505),
			CreatedAt:     createdAt,
		},
	}

	rows := transactionCsvRows(transactions)

	require.Len(t, rows, 1)
	require.Equal(t, "11111111-1111-1111-1111-111111111111", rows[0].TransactionID)
	require.Equal(t, "BUY", rows[0].Side)
	require.Equal(t, "AAPL", rows[0].Symbol)
	require.EqualValues(t, 10, rows[0].Quantity)
	// the export carries the same display strings the dashboard renders
	require.Equal(t, "$150.50", rows[0].Price)
	require.Equal(t, "$1,505.00", rows[0].Amount)
	require.Equal(t, "Jun 3, 2024 2:30 PM", rows[0].CreatedAt)
}
