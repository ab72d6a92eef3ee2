package api

import (
	"fmt"
	"time"

	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TradeRequest struct {
	Symbol   string `json:"symbol"`
	Quantity int64  `json:"quantity"`
	// Price is optional; when omitted the order fills at the current
	// quoted price (synthetic in degraded mode).
	Price *float64 `json:"price"`
}

type TradeResponse struct {
	TransactionID string  `json:"transactionID"`
	Side          string  `json:"side"`
	Symbol        string  `json:"symbol"`
	Quantity      int64   `json:"quantity"`
	Price         float64 `json:"price"`
	Amount        float64 `json:"amount"`
	CreatedAt     string  `json:"createdAt"`
	Cash          float64 `json:"cash"`
}

func (m ApiHandler) buy(c *gin.Context) {
	m.trade(c, domain.TransactionSide_Buy)
}

func (m ApiHandler) sell(c *gin.Context) {
	m.trade(c, domain.TransactionSide_Sell)
}

func (m ApiHandler) trade(c *gin.Context, side domain.TransactionSide) {
	ctx := c.Request.Context()

	var requestBody TradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request: %w", err), c, 400)
		return
	}

	price, err := m.resolvePrice(c, requestBody)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var transaction *domain.Transaction
	if side == domain.TransactionSide_Buy {
		transaction, err = m.PortfolioService.Buy(ctx, requestBody.Symbol, requestBody.Quantity, price)
	} else {
		transaction, err = m.PortfolioService.Sell(ctx, requestBody.Symbol, requestBody.Quantity, price)
	}
	if err != nil {
		returnTradeError(err, c)
		return
	}

	c.JSON(200, TradeResponse{
		TransactionID: transaction.TransactionID.String(),
		Side:          string(transaction.Side),
		Symbol:        transaction.Symbol,
		Quantity:      transaction.Quantity,
		Price:         transaction.Price.InexactFloat64(),
		Amount:        transaction.Amount.InexactFloat64(),
		CreatedAt:     transaction.CreatedAt.Format(time.RFC3339),
		Cash:          m.PortfolioService.Get(ctx).Cash.InexactFloat64(),
	})
}

func (m ApiHandler) resolvePrice(c *gin.Context, requestBody TradeRequest) (decimal.Decimal, error) {
	if requestBody.Price != nil {
		return decimal.NewFromFloat(*requestBody.Price), nil
	}
	quote, _ := m.MarketDataService.GetQuote(c.Request.Context(), requestBody.Symbol)
	return decimal.NewFromFloat(quote.CurrentPrice), nil
}

func (m ApiHandler) resetPortfolio(c *gin.Context) {
	ctx := c.Request.Context()
	if err := m.PortfolioService.Reset(ctx); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, map[string]string{"message": "ok"})
}
