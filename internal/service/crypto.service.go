package service

import (
	"context"

	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/mock"
)

// DefaultCryptoIDs is the coin set shown when the caller doesn't pick.
var DefaultCryptoIDs = []string{"bitcoin", "ethereum", "cardano", "solana", "dogecoin"}

type CryptoProvider interface {
	GetMarkets(ids []string) ([]domain.CryptoPrice, error)
	GetGlobal() (*domain.GlobalMarket, error)
}

type CryptoService interface {
	GetPrices(ctx context.Context, ids []string) ([]domain.CryptoPrice, bool)
	GetGlobalMarket(ctx context.Context) (*domain.GlobalMarket, bool)
}

type cryptoServiceHandler struct {
	provider    CryptoProvider
	newFallback func(symbol string) *mock.Source
}

func NewCryptoService(provider CryptoProvider) CryptoService {
	return &cryptoServiceHandler{
		provider:    provider,
		newFallback: mock.NewSymbolSource,
	}
}

func (h *cryptoServiceHandler) GetPrices(ctx context.Context, ids []string) ([]domain.CryptoPrice, bool) {
	if len(ids) == 0 {
		ids = DefaultCryptoIDs
	}

	if h.provider != nil {
		prices, err := h.provider.GetMarkets(ids)
		if err == nil && len(prices) > 0 {
			return prices, false
		}
		logger.FromContext(ctx).Warnf("crypto provider failed: %v", err)
	}

	return h.newFallback("crypto").CryptoPrices(ids), true
}

func (h *cryptoServiceHandler) GetGlobalMarket(ctx context.Context) (*domain.GlobalMarket, bool) {
	if h.provider != nil {
		global, err := h.provider.GetGlobal()
		if err == nil {
			return global, false
		}
		logger.FromContext(ctx).Warnf("crypto global provider failed: %v", err)
	}

	// a coarse synthetic snapshot keeps the panel populated
	return &domain.GlobalMarket{
		TotalMarketCap:      2.4e12,
		TotalVolume:         9.0e10,
		MarketCapPercentage: map[string]float64{"btc": 51.2, "eth": 17.1},
	}, true
}
