package service

import (
	"context"

	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/mock"
	"papertrade/internal/sentiment"
)

type MarketNewsProvider interface {
	GetTopBusinessHeadlines(limit int) ([]domain.NewsArticle, error)
}

type StockNewsProvider interface {
	GetCompanyNews(symbol string, limit int) ([]domain.NewsArticle, error)
}

// NewsService fetches headlines and attaches keyword sentiment to each
// article. Dead providers degrade to synthetic articles.
type NewsService interface {
	GetMarketNews(ctx context.Context, limit int) ([]domain.NewsArticle, bool)
	GetStockNews(ctx context.Context, symbol string, limit int) ([]domain.NewsArticle, bool)
}

type newsServiceHandler struct {
	marketProvider MarketNewsProvider
	stockProvider  StockNewsProvider
	newFallback    func(symbol string) *mock.Source
}

func NewNewsService(marketProvider MarketNewsProvider, stockProvider StockNewsProvider) NewsService {
	return &newsServiceHandler{
		marketProvider: marketProvider,
		stockProvider:  stockProvider,
		newFallback:    mock.NewSymbolSource,
	}
}

func (h *newsServiceHandler) GetMarketNews(ctx context.Context, limit int) ([]domain.NewsArticle, bool) {
	if h.marketProvider != nil {
		articles, err := h.marketProvider.GetTopBusinessHeadlines(limit)
		if err == nil {
			return scoreArticles(articles), false
		}
		logger.FromContext(ctx).Warnf("market news provider failed: %v", err)
	}

	return scoreArticles(h.newFallback("market").MarketNews(limit)), true
}

func (h *newsServiceHandler) GetStockNews(ctx context.Context, symbol string, limit int) ([]domain.NewsArticle, bool) {
	if h.stockProvider != nil {
		articles, err := h.stockProvider.GetCompanyNews(symbol, limit)
		if err == nil {
			return scoreArticles(articles), false
		}
		logger.FromContext(ctx).Warnf("stock news provider failed for %s: %v", symbol, err)
	}

	return scoreArticles(h.newFallback(symbol).StockNews(symbol, limit)), true
}

func scoreArticles(articles []domain.NewsArticle) []domain.NewsArticle {
	for i, article := range articles {
		r := sentiment.Analyze(article.Headline + " " + article.Summary)
		articles[i].Sentiment = domain.Sentiment{
			Label:      r.Sentiment,
			Score:      r.Score,
			Confidence: r.Confidence,
		}
	}
	return articles
}
