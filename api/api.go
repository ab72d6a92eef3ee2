package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"papertrade/internal/logger"
	"papertrade/internal/service"
	"papertrade/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	PortfolioService  service.PortfolioService
	WatchlistService  service.WatchlistService
	MarketDataService service.MarketDataService
	NewsService       service.NewsService
	CryptoService     service.CryptoService
	Cache             *service.Cache
	Store             store.Store
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to papertrade"})
	})

	router.GET("/portfolio", m.getPortfolio)
	router.POST("/portfolio/buy", m.buy)
	router.POST("/portfolio/sell", m.sell)
	router.POST("/portfolio/reset", m.resetPortfolio)
	router.GET("/portfolio/transactions", m.getTransactions)
	router.GET("/portfolio/transactions.csv", m.getTransactionsCsv)

	router.GET("/watchlist", m.getWatchlist)
	router.POST("/watchlist", m.addToWatchlist)
	router.DELETE("/watchlist/:symbol", m.removeFromWatchlist)

	router.GET("/quote/:symbol", m.getQuote)
	router.POST("/quotes", m.getQuotes)
	router.GET("/historical/:symbol", m.getHistoricalData)
	router.GET("/search", m.searchSymbols)
	router.GET("/profile/:symbol", m.getCompanyProfile)

	router.GET("/news", m.getMarketNews)
	router.GET("/news/:symbol", m.getStockNews)
	router.GET("/crypto", m.getCryptoPrices)
	router.GET("/crypto/global", m.getGlobalMarket)
	router.POST("/sentiment", m.analyzeSentiment)

	router.GET("/settings", m.getSettings)
	router.PUT("/settings", m.updateSettings)
	router.GET("/export", m.exportData)
	router.POST("/import", m.importData)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnTradeError maps user-correctable validation failures to 400 and
// everything else to 500.
func returnTradeError(err error, c *gin.Context) {
	if _, ok := err.(service.ValidationError); ok {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	returnErrorJson(err, c)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := zap.S()

	reqCtx := context.WithValue(ctx.Request.Context(), logger.ContextKey, log)
	ctx.Request = ctx.Request.WithContext(reqCtx)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"clientIp", ctx.ClientIP(),
	)
}
