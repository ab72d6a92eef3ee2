package service

import (
	"context"
	"strings"
	"sync"

	"papertrade/internal/logger"
	"papertrade/internal/store"
)

// DefaultWatchlist seeds a brand-new session.
var DefaultWatchlist = []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN"}

// WatchlistService owns the ordered set of tracked symbols. Add and
// Remove are idempotent; symbols are normalized to uppercase.
type WatchlistService interface {
	List(ctx context.Context) []string
	Add(ctx context.Context, symbol string) []string
	Remove(ctx context.Context, symbol string) []string
	Reload(ctx context.Context) error
}

type watchlistServiceHandler struct {
	mu      sync.Mutex
	symbols []string
	store   store.Store
}

func NewWatchlistService(ctx context.Context, s store.Store) WatchlistService {
	symbols, err := s.LoadWatchlist()
	if err != nil {
		logger.FromContext(ctx).Errorf("failed to load watchlist, using default: %v", err)
	}
	if symbols == nil {
		symbols = append([]string{}, DefaultWatchlist...)
	}

	return &watchlistServiceHandler{
		symbols: symbols,
		store:   s,
	}
}

func (h *watchlistServiceHandler) List(ctx context.Context) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string{}, h.symbols...)
}

func (h *watchlistServiceHandler) Add(ctx context.Context, symbol string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return append([]string{}, h.symbols...)
	}

	for _, existing := range h.symbols {
		if existing == symbol {
			return append([]string{}, h.symbols...)
		}
	}

	h.symbols = append(h.symbols, symbol)
	h.persist(ctx)
	return append([]string{}, h.symbols...)
}

func (h *watchlistServiceHandler) Remove(ctx context.Context, symbol string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for i, existing := range h.symbols {
		if existing == symbol {
			h.symbols = append(h.symbols[:i], h.symbols[i+1:]...)
			h.persist(ctx)
			break
		}
	}
	return append([]string{}, h.symbols...)
}

// Reload replaces the in-memory list with the stored one, used after an
// import writes a new blob underneath a live session.
func (h *watchlistServiceHandler) Reload(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	symbols, err := h.store.LoadWatchlist()
	if err != nil {
		return err
	}
	if symbols == nil {
		symbols = append([]string{}, DefaultWatchlist...)
	}
	h.symbols = symbols
	return nil
}

func (h *watchlistServiceHandler) persist(ctx context.Context) {
	if err := h.store.SaveWatchlist(h.symbols); err != nil {
		logger.FromContext(ctx).Errorf("failed to save watchlist: %v", err)
	}
}
