package cmd

import (
	"context"
	"fmt"

	"papertrade/api"
	"papertrade/internal"
	"papertrade/internal/logger"
	"papertrade/internal/repository"
	"papertrade/internal/service"
	"papertrade/internal/store"
	"papertrade/pkg/alphavantage"
	"papertrade/pkg/coingecko"
	"papertrade/pkg/finnhub"
	"papertrade/pkg/newsapi"
)

// InitializeDependencies wires the service graph. Providers whose API
// key is missing are simply left out; the affected calls then run
// through the remaining providers or the synthetic fallback.
func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	log := logger.New()
	ctx := context.WithValue(context.Background(), logger.ContextKey, log)

	fileStore := store.NewFileStore(secrets.DataDir)
	portfolioService := service.NewPortfolioService(ctx, fileStore)
	watchlistService := service.NewWatchlistService(ctx, fileStore)

	yahooRepository := repository.NewYahooRepository()

	quoteProviders := []service.QuoteProvider{}
	historyProviders := []service.HistoryProvider{}
	var searcher service.SymbolSearcher
	var profileProvider service.ProfileProvider
	var marketNewsProvider service.MarketNewsProvider
	var stockNewsProvider service.StockNewsProvider

	if secrets.FinnhubApiKey != "" {
		finnhubClient := finnhub.NewClient(secrets.FinnhubApiKey)
		quoteProviders = append(quoteProviders, finnhubClient)
		profileProvider = finnhubClient
		stockNewsProvider = finnhubClient
	}
	quoteProviders = append(quoteProviders, yahooRepository)

	if secrets.AlphaVantageApiKey != "" {
		alphaVantageClient := alphavantage.NewClient(secrets.AlphaVantageApiKey)
		historyProviders = append(historyProviders, alphaVantageClient)
		searcher = alphaVantageClient
	}
	historyProviders = append(historyProviders, yahooRepository)

	if secrets.NewsApiKey != "" {
		marketNewsProvider = newsapi.NewClient(secrets.NewsApiKey)
	}

	marketDataService := service.NewMarketDataService(
		quoteProviders,
		historyProviders,
		searcher,
		profileProvider,
	)
	newsService := service.NewNewsService(marketNewsProvider, stockNewsProvider)
	cryptoService := service.NewCryptoService(coingecko.NewClient())

	cache := service.NewCache()
	service.StartBackgroundRefresh(
		ctx,
		service.NewRefresher(),
		cache,
		marketDataService,
		portfolioService,
		watchlistService,
		newsService,
		cryptoService,
	)

	return &api.ApiHandler{
		PortfolioService:  portfolioService,
		WatchlistService:  watchlistService,
		MarketDataService: marketDataService,
		NewsService:       newsService,
		CryptoService:     cryptoService,
		Cache:             cache,
		Store:             fileStore,
	}, nil
}
