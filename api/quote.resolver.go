package api

import (
	"fmt"

	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
)

type QuoteResponse struct {
	Quote    domain.Quote `json:"quote"`
	Degraded bool         `json:"degraded"`
}

func (m ApiHandler) getQuote(c *gin.Context) {
	symbol := c.Param("symbol")
	if quote, degraded, ok := m.Cache.Quote(symbol); ok {
		c.JSON(200, QuoteResponse{Quote: quote, Degraded: degraded})
		return
	}

	quote, degraded := m.MarketDataService.GetQuote(c.Request.Context(), symbol)
	m.Cache.PutQuote(*quote, degraded)
	c.JSON(200, QuoteResponse{Quote: *quote, Degraded: degraded})
}

type GetQuotesRequest struct {
	Symbols []string `json:"symbols"`
}

type GetQuotesResponse struct {
	Quotes   map[string]domain.Quote `json:"quotes"`
	Degraded bool                    `json:"degraded"`
}

func (m ApiHandler) getQuotes(c *gin.Context) {
	var requestBody GetQuotesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request: %w", err), c, 400)
		return
	}

	quotes, degraded := m.MarketDataService.GetMultipleQuotes(c.Request.Context(), requestBody.Symbols)
	c.JSON(200, GetQuotesResponse{Quotes: quotes, Degraded: degraded})
}

type HistoricalDataResponse struct {
	Symbol   string          `json:"symbol"`
	Interval string          `json:"interval"`
	Candles  []domain.Candle `json:"candles"`
	Degraded bool            `json:"degraded"`
}

func (m ApiHandler) getHistoricalData(c *gin.Context) {
	symbol := c.Param("symbol")
	interval := domain.Interval(c.DefaultQuery("interval", string(domain.Interval_Daily)))

	switch interval {
	case domain.Interval_Daily, domain.Interval_Weekly, domain.Interval_Monthly:
	default:
		returnErrorJsonCode(fmt.Errorf("invalid interval %q", interval), c, 400)
		return
	}

	candles, degraded := m.MarketDataService.GetHistoricalData(c.Request.Context(), symbol, interval)
	c.JSON(200, HistoricalDataResponse{
		Symbol:   symbol,
		Interval: string(interval),
		Candles:  candles,
		Degraded: degraded,
	})
}

type SearchResponse struct {
	Matches []domain.SymbolMatch `json:"matches"`
}

func (m ApiHandler) searchSymbols(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(200, SearchResponse{Matches: []domain.SymbolMatch{}})
		return
	}

	matches, err := m.MarketDataService.SearchSymbols(c.Request.Context(), query)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, SearchResponse{Matches: matches})
}

type CompanyProfileResponse struct {
	Profile      domain.CompanyProfile `json:"profile"`
	Fundamentals domain.Fundamentals   `json:"fundamentals"`
	Degraded     bool                  `json:"degraded"`
}

func (m ApiHandler) getCompanyProfile(c *gin.Context) {
	ctx := c.Request.Context()
	symbol := c.Param("symbol")

	profile, profileDegraded := m.MarketDataService.GetCompanyProfile(ctx, symbol)
	fundamentals, fundamentalsDegraded := m.MarketDataService.GetFundamentals(ctx, symbol)

	c.JSON(200, CompanyProfileResponse{
		Profile:      *profile,
		Fundamentals: *fundamentals,
		Degraded:     profileDegraded || fundamentalsDegraded,
	})
}
