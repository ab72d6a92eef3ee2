package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"papertrade/internal/domain"
	"papertrade/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func Test_getQuote_servedFromCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cache := service.NewCache()
	cache.PutQuote(domain.Quote{Symbol: "AAPL", CurrentPrice: 123.45}, false)

	// MarketDataService stays nil: a cache miss would panic, so this
	// pins the handler to the cached path
	router := ApiHandler{Cache: cache}.InitializeRouterEngine()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/quote/AAPL", nil))

	require.Equal(t, 200, recorder.Code)
	var response QuoteResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, "AAPL", response.Quote.Symbol)
	require.InDelta(t, 123.45, response.Quote.CurrentPrice, 1e-9)
	require.False(t, response.Degraded)
}
