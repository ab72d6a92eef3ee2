package api

import (
	"strconv"

	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
)

type NewsResponse struct {
	Articles []domain.NewsArticle `json:"articles"`
	Degraded bool                 `json:"degraded"`
}

func newsLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		return 10
	}
	return limit
}

func (m ApiHandler) getMarketNews(c *gin.Context) {
	limit := newsLimit(c)
	if articles, degraded, ok := m.Cache.News(limit); ok {
		c.JSON(200, NewsResponse{Articles: articles, Degraded: degraded})
		return
	}

	articles, degraded := m.NewsService.GetMarketNews(c.Request.Context(), limit)
	c.JSON(200, NewsResponse{Articles: articles, Degraded: degraded})
}

func (m ApiHandler) getStockNews(c *gin.Context) {
	articles, degraded := m.NewsService.GetStockNews(c.Request.Context(), c.Param("symbol"), newsLimit(c))
	c.JSON(200, NewsResponse{Articles: articles, Degraded: degraded})
}
