package service

import (
	"context"
	"strings"

	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/mock"
)

// Provider contracts implemented by pkg/finnhub, pkg/alphavantage and
// internal/repository (Yahoo). Kept narrow so tests can swap in mocks
// and force the degraded branch deterministically.
type QuoteProvider interface {
	GetQuote(symbol string) (*domain.Quote, error)
}

type HistoryProvider interface {
	GetTimeSeries(symbol string, interval domain.Interval) ([]domain.Candle, error)
}

type SymbolSearcher interface {
	SearchSymbols(query string) ([]domain.SymbolMatch, error)
}

type ProfileProvider interface {
	GetCompanyProfile(symbol string) (*domain.CompanyProfile, error)
	GetFundamentals(symbol string) (*domain.Fundamentals, error)
}

// MarketDataService is the single data-fetch surface the rest of the
// system sees. Every method degrades to synthetic data instead of
// returning an error, and reports that it did so via the degraded flag:
// the dashboard must never block on a dead provider.
type MarketDataService interface {
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, bool)
	GetMultipleQuotes(ctx context.Context, symbols []string) (map[string]domain.Quote, bool)
	GetHistoricalData(ctx context.Context, symbol string, interval domain.Interval) ([]domain.Candle, bool)
	SearchSymbols(ctx context.Context, query string) ([]domain.SymbolMatch, error)
	GetCompanyProfile(ctx context.Context, symbol string) (*domain.CompanyProfile, bool)
	GetFundamentals(ctx context.Context, symbol string) (*domain.Fundamentals, bool)
}

type marketDataServiceHandler struct {
	// quoteProviders are tried in order; the first success wins.
	quoteProviders   []QuoteProvider
	historyProviders []HistoryProvider
	searcher         SymbolSearcher
	profileProvider  ProfileProvider

	newFallback func(symbol string) *mock.Source
}

func NewMarketDataService(
	quoteProviders []QuoteProvider,
	historyProviders []HistoryProvider,
	searcher SymbolSearcher,
	profileProvider ProfileProvider,
) MarketDataService {
	return &marketDataServiceHandler{
		quoteProviders:   quoteProviders,
		historyProviders: historyProviders,
		searcher:         searcher,
		profileProvider:  profileProvider,
		newFallback:      mock.NewSymbolSource,
	}
}

func (h *marketDataServiceHandler) GetQuote(ctx context.Context, symbol string) (*domain.Quote, bool) {
	log := logger.FromContext(ctx)
	symbol = strings.ToUpper(symbol)

	for _, provider := range h.quoteProviders {
		q, err := provider.GetQuote(symbol)
		if err == nil {
			return q, false
		}
		log.Warnf("quote provider failed for %s: %v", symbol, err)
	}

	q := h.newFallback(symbol).Quote(symbol)
	return &q, true
}

// GetMultipleQuotes fans out per symbol. The result is degraded if any
// single symbol fell back to synthetic data.
func (h *marketDataServiceHandler) GetMultipleQuotes(ctx context.Context, symbols []string) (map[string]domain.Quote, bool) {
	out := map[string]domain.Quote{}
	degraded := false
	for _, symbol := range symbols {
		q, d := h.GetQuote(ctx, symbol)
		out[q.Symbol] = *q
		degraded = degraded || d
	}
	return out, degraded
}

func (h *marketDataServiceHandler) GetHistoricalData(ctx context.Context, symbol string, interval domain.Interval) ([]domain.Candle, bool) {
	log := logger.FromContext(ctx)
	symbol = strings.ToUpper(symbol)

	for _, provider := range h.historyProviders {
		candles, err := provider.GetTimeSeries(symbol, interval)
		if err == nil && len(candles) > 0 {
			return candles, false
		}
		log.Warnf("history provider failed for %s (%s): %v", symbol, interval, err)
	}

	return h.newFallback(symbol).HistoricalData(symbol, 100), true
}

// SearchSymbols has no useful synthetic fallback; a dead provider just
// yields an empty result set.
func (h *marketDataServiceHandler) SearchSymbols(ctx context.Context, query string) ([]domain.SymbolMatch, error) {
	if h.searcher == nil {
		return []domain.SymbolMatch{}, nil
	}
	matches, err := h.searcher.SearchSymbols(query)
	if err != nil {
		logger.FromContext(ctx).Warnf("symbol search failed for %q: %v", query, err)
		return []domain.SymbolMatch{}, nil
	}
	return matches, nil
}

func (h *marketDataServiceHandler) GetCompanyProfile(ctx context.Context, symbol string) (*domain.CompanyProfile, bool) {
	symbol = strings.ToUpper(symbol)

	if h.profileProvider != nil {
		profile, err := h.profileProvider.GetCompanyProfile(symbol)
		if err == nil {
			return profile, false
		}
		logger.FromContext(ctx).Warnf("profile provider failed for %s: %v", symbol, err)
	}

	profile := h.newFallback(symbol).CompanyProfile(symbol)
	return &profile, true
}

func (h *marketDataServiceHandler) GetFundamentals(ctx context.Context, symbol string) (*domain.Fundamentals, bool) {
	symbol = strings.ToUpper(symbol)

	if h.profileProvider != nil {
		fundamentals, err := h.profileProvider.GetFundamentals(symbol)
		if err == nil {
			return fundamentals, false
		}
		logger.FromContext(ctx).Warnf("fundamentals provider failed for %s: %v", symbol, err)
	}

	// all-nil fields render as "N/A" downstream
	return &domain.Fundamentals{}, true
}
