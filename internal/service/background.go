package service

import (
	"context"

	"papertrade/internal/domain"
)

// Subjects the background refresher keeps warm. The ticker tape and the
// watchlist panel render the same symbols, so two subjects poll the
// watchlist at each view's own cadence.
const (
	subjectTickerQuotes    = "quotes.ticker"
	subjectWatchlistQuotes = "quotes.watchlist"
	subjectPortfolioQuotes = "quotes.portfolio"
	subjectMarketNews      = "news.market"
	subjectCryptoPrices    = "crypto.prices"
)

// cachedNewsLimit fetches more headlines than the panel's default page
// so smaller limit queries can be answered from cache.
const cachedNewsLimit = 20

type quoteBatch struct {
	quotes   map[string]domain.Quote
	degraded bool
}

type newsBatch struct {
	articles []domain.NewsArticle
	degraded bool
}

type cryptoBatch struct {
	prices   []domain.CryptoPrice
	degraded bool
}

// StartBackgroundRefresh subscribes the polling loops that keep cache
// warm: watchlist quotes for the ticker tape and the watchlist panel,
// quotes for the held positions, the market news feed and the crypto
// board. The loops run until ctx is cancelled or refresher.StopAll.
func StartBackgroundRefresh(
	ctx context.Context,
	refresher *Refresher,
	cache *Cache,
	marketData MarketDataService,
	portfolios PortfolioService,
	watchlists WatchlistService,
	news NewsService,
	crypto CryptoService,
) {
	publishQuotes := func(_ string, value any) {
		batch := value.(quoteBatch)
		cache.PutQuotes(batch.quotes, batch.degraded)
	}
	fetchWatchlistQuotes := func(ctx context.Context) (any, error) {
		quotes, degraded := marketData.GetMultipleQuotes(ctx, watchlists.List(ctx))
		return quoteBatch{quotes: quotes, degraded: degraded}, nil
	}

	refresher.Subscribe(ctx, subjectTickerQuotes, TickerInterval, fetchWatchlistQuotes, publishQuotes)
	refresher.Subscribe(ctx, subjectWatchlistQuotes, WatchlistInterval, fetchWatchlistQuotes, publishQuotes)

	refresher.Subscribe(ctx, subjectPortfolioQuotes, PortfolioInterval,
		func(ctx context.Context) (any, error) {
			portfolio := portfolios.Get(ctx)
			symbols := make([]string, 0, len(portfolio.Holdings))
			for symbol := range portfolio.Holdings {
				symbols = append(symbols, symbol)
			}
			quotes, degraded := marketData.GetMultipleQuotes(ctx, symbols)
			return quoteBatch{quotes: quotes, degraded: degraded}, nil
		},
		publishQuotes,
	)

	refresher.Subscribe(ctx, subjectMarketNews, NewsInterval,
		func(ctx context.Context) (any, error) {
			articles, degraded := news.GetMarketNews(ctx, cachedNewsLimit)
			return newsBatch{articles: articles, degraded: degraded}, nil
		},
		func(_ string, value any) {
			batch := value.(newsBatch)
			cache.PutNews(batch.articles, batch.degraded)
		},
	)

	refresher.Subscribe(ctx, subjectCryptoPrices, CryptoInterval,
		func(ctx context.Context) (any, error) {
			prices, degraded := crypto.GetPrices(ctx, nil)
			return cryptoBatch{prices: prices, degraded: degraded}, nil
		},
		func(_ string, value any) {
			batch := value.(cryptoBatch)
			cache.PutCrypto(batch.prices, batch.degraded)
		},
	)
}
