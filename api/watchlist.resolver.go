package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type WatchlistResponse struct {
	Symbols []string `json:"symbols"`
}

func (m ApiHandler) getWatchlist(c *gin.Context) {
	c.JSON(200, WatchlistResponse{
		Symbols: m.WatchlistService.List(c.Request.Context()),
	})
}

type AddToWatchlistRequest struct {
	Symbol string `json:"symbol"`
}

func (m ApiHandler) addToWatchlist(c *gin.Context) {
	var requestBody AddToWatchlistRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request: %w", err), c, 400)
		return
	}
	if requestBody.Symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400)
		return
	}

	c.JSON(200, WatchlistResponse{
		Symbols: m.WatchlistService.Add(c.Request.Context(), requestBody.Symbol),
	})
}

func (m ApiHandler) removeFromWatchlist(c *gin.Context) {
	c.JSON(200, WatchlistResponse{
		Symbols: m.WatchlistService.Remove(c.Request.Context(), c.Param("symbol")),
	})
}
