package api

import (
	"time"

	"papertrade/internal/calc"
	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type HoldingResponse struct {
	Symbol          string  `json:"symbol"`
	Quantity        int64   `json:"quantity"`
	AverageCost     float64 `json:"averageCost"`
	PurchaseDate    string  `json:"purchaseDate"`
	CurrentPrice    float64 `json:"currentPrice"`
	CostBasis       float64 `json:"costBasis"`
	CurrentValue    float64 `json:"currentValue"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
}

type AllocationResponse struct {
	Symbol       string  `json:"symbol"`
	HoldingValue float64 `json:"holdingValue"`
	Allocation   float64 `json:"allocation"`
}

type RiskResponse struct {
	DiversificationScore int     `json:"diversificationScore"`
	HoldingsCount        int     `json:"holdingsCount"`
	LargestPosition      string  `json:"largestPosition"`
	LargestPositionPct   float64 `json:"largestPositionPercent"`
}

type GetPortfolioResponse struct {
	Cash                 float64              `json:"cash"`
	TotalValue           float64              `json:"totalValue"`
	TotalGainLoss        float64              `json:"totalGainLoss"`
	TotalGainLossPercent float64              `json:"totalGainLossPercent"`
	Holdings             []HoldingResponse    `json:"holdings"`
	Allocation           []AllocationResponse `json:"allocation"`
	Risk                 RiskResponse         `json:"risk"`
	Degraded             bool                 `json:"degraded"`
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	ctx := c.Request.Context()
	portfolio := m.PortfolioService.Get(ctx)

	quotes, degraded := m.MarketDataService.GetMultipleQuotes(ctx, portfolio.HeldSymbols())
	prices := map[string]decimal.Decimal{}
	for symbol, quote := range quotes {
		prices[symbol] = decimal.NewFromFloat(quote.CurrentPrice)
	}

	c.JSON(200, portfolioResponseFromDomain(portfolio, prices, degraded))
}

func portfolioResponseFromDomain(portfolio *domain.Portfolio, prices map[string]decimal.Decimal, degraded bool) GetPortfolioResponse {
	total := calc.TotalGainLoss(portfolio.Holdings, prices)

	holdings := []HoldingResponse{}
	for symbol, holding := range portfolio.Holdings {
		gl := calc.HoldingGainLoss(holding, prices[symbol])
		holdings = append(holdings, HoldingResponse{
			Symbol:          symbol,
			Quantity:        holding.Quantity,
			AverageCost:     holding.AverageCost.InexactFloat64(),
			PurchaseDate:    holding.PurchaseDate.Format(time.RFC3339),
			CurrentPrice:    prices[symbol].InexactFloat64(),
			CostBasis:       gl.CostBasis.InexactFloat64(),
			CurrentValue:    gl.CurrentValue.InexactFloat64(),
			GainLoss:        gl.GainLoss.InexactFloat64(),
			GainLossPercent: gl.GainLossPercent.InexactFloat64(),
		})
	}

	allocation := []AllocationResponse{}
	for _, entry := range calc.Allocation(portfolio.Holdings, prices) {
		allocation = append(allocation, AllocationResponse{
			Symbol:       entry.Symbol,
			HoldingValue: entry.HoldingValue.InexactFloat64(),
			Allocation:   entry.Allocation.InexactFloat64(),
		})
	}

	// keep the holdings list in allocation order, unheld-price entries last
	ordered := []HoldingResponse{}
	for _, entry := range allocation {
		for _, h := range holdings {
			if h.Symbol == entry.Symbol {
				ordered = append(ordered, h)
			}
		}
	}
	for _, h := range holdings {
		found := false
		for _, o := range ordered {
			if o.Symbol == h.Symbol {
				found = true
				break
			}
		}
		if !found {
			ordered = append(ordered, h)
		}
	}

	risk := calc.ComputeRiskMetrics(portfolio.Holdings, prices)

	return GetPortfolioResponse{
		Cash:                 portfolio.Cash.InexactFloat64(),
		TotalValue:           portfolio.TotalValue(prices).InexactFloat64(),
		TotalGainLoss:        total.GainLoss.InexactFloat64(),
		TotalGainLossPercent: total.GainLossPercent.InexactFloat64(),
		Holdings:             ordered,
		Allocation:           allocation,
		Risk: RiskResponse{
			DiversificationScore: risk.DiversificationScore,
			HoldingsCount:        risk.HoldingsCount,
			LargestPosition:      risk.LargestPosition,
			LargestPositionPct:   risk.LargestPositionPct.InexactFloat64(),
		},
		Degraded: degraded,
	}
}
