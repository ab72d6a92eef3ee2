package api

import (
	"strings"

	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
)

type CryptoPricesResponse struct {
	Prices   []domain.CryptoPrice `json:"prices"`
	Degraded bool                 `json:"degraded"`
}

func (m ApiHandler) getCryptoPrices(c *gin.Context) {
	ids := []string{}
	if raw := c.Query("ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	// the background loop only warms the default coin set
	if len(ids) == 0 {
		if prices, degraded, ok := m.Cache.Crypto(); ok {
			c.JSON(200, CryptoPricesResponse{Prices: prices, Degraded: degraded})
			return
		}
	}

	prices, degraded := m.CryptoService.GetPrices(c.Request.Context(), ids)
	c.JSON(200, CryptoPricesResponse{Prices: prices, Degraded: degraded})
}

type GlobalMarketResponse struct {
	Global   domain.GlobalMarket `json:"global"`
	Degraded bool                `json:"degraded"`
}

func (m ApiHandler) getGlobalMarket(c *gin.Context) {
	global, degraded := m.CryptoService.GetGlobalMarket(c.Request.Context())
	c.JSON(200, GlobalMarketResponse{Global: *global, Degraded: degraded})
}
