package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"

	"papertrade/internal/domain"
	"papertrade/internal/format"
)

type TransactionResponse struct {
	TransactionID string  `json:"transactionID"`
	Side          string  `json:"side"`
	Symbol        string  `json:"symbol"`
	Quantity      int64   `json:"quantity"`
	Price         float64 `json:"price"`
	Amount        float64 `json:"amount"`
	CreatedAt     string  `json:"createdAt"`
}

func (m ApiHandler) getTransactions(c *gin.Context) {
	transactions := m.PortfolioService.Transactions(c.Request.Context())

	out := []TransactionResponse{}
	for _, t := range transactions {
		out = append(out, TransactionResponse{
			TransactionID: t.TransactionID.String(),
			Side:          string(t.Side),
			Symbol:        t.Symbol,
			Quantity:      t.Quantity,
			Price:         t.Price.InexactFloat64(),
			Amount:        t.Amount.InexactFloat64(),
			CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(200, out)
}

type transactionCsvRow struct {
	TransactionID string `csv:"transaction_id"`
	Side          string `csv:"side"`
	Symbol        string `csv:"symbol"`
	Quantity      int64  `csv:"quantity"`
	Price         string `csv:"price"`
	Amount        string `csv:"amount"`
	CreatedAt     string `csv:"created_at"`
}

// transactionCsvRows renders the history the way the dashboard shows it,
// so the exported file matches what the user sees on screen.
func transactionCsvRows(transactions []domain.Transaction) []transactionCsvRow {
	rows := []transactionCsvRow{}
	for _, t := range transactions {
		rows = append(rows, transactionCsvRow{
			TransactionID: t.TransactionID.String(),
			Side:          string(t.Side),
			Symbol:        t.Symbol,
			Quantity:      t.Quantity,
			Price:         format.Currency(t.Price.InexactFloat64()),
			Amount:        format.Currency(t.Amount.InexactFloat64()),
			CreatedAt:     format.DateTime(t.CreatedAt),
		})
	}
	return rows
}

func (m ApiHandler) getTransactionsCsv(c *gin.Context) {
	transactions := m.PortfolioService.Transactions(c.Request.Context())

	rows := transactionCsvRows(transactions)
	csvContent, err := gocsv.MarshalString(&rows)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(200, "text/csv", []byte(csvContent))
}
