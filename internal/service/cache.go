package service

import (
	"strings"
	"sync"
	"time"

	"papertrade/internal/domain"
)

// staleFactor sizes each freshness window to twice the refresh interval,
// so a single missed poll does not empty the section it feeds.
const staleFactor = 2

type quoteEntry struct {
	quote    domain.Quote
	degraded bool
	storedAt time.Time
}

type newsEntry struct {
	articles []domain.NewsArticle
	degraded bool
	storedAt time.Time
}

type cryptoEntry struct {
	prices   []domain.CryptoPrice
	degraded bool
	storedAt time.Time
}

// Cache holds the most recent background refresh results so request
// handlers answer from warm data instead of walking the provider chain
// on every page load. All methods are safe on a nil *Cache, which
// behaves as an always-miss cache.
type Cache struct {
	mu  sync.RWMutex
	now func() time.Time

	quotes map[string]quoteEntry
	news   *newsEntry
	crypto *cryptoEntry
}

func NewCache() *Cache {
	return &Cache{
		now:    time.Now,
		quotes: map[string]quoteEntry{},
	}
}

func (c *Cache) PutQuote(quote domain.Quote, degraded bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes[quote.Symbol] = quoteEntry{quote: quote, degraded: degraded, storedAt: c.now()}
}

func (c *Cache) PutQuotes(quotes map[string]domain.Quote, degraded bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	storedAt := c.now()
	for _, quote := range quotes {
		c.quotes[quote.Symbol] = quoteEntry{quote: quote, degraded: degraded, storedAt: storedAt}
	}
}

// Quote returns the cached quote for symbol while it is younger than
// the quote refresh window.
func (c *Cache) Quote(symbol string) (domain.Quote, bool, bool) {
	if c == nil {
		return domain.Quote{}, false, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.quotes[strings.ToUpper(symbol)]
	if !ok || c.now().Sub(entry.storedAt) >= staleFactor*QuoteInterval {
		return domain.Quote{}, false, false
	}
	return entry.quote, entry.degraded, true
}

func (c *Cache) PutNews(articles []domain.NewsArticle, degraded bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.news = &newsEntry{articles: articles, degraded: degraded, storedAt: c.now()}
}

// News returns up to limit cached headlines. A request for more
// headlines than the cache holds is a miss, so the caller fetches live
// instead of silently truncating.
func (c *Cache) News(limit int) ([]domain.NewsArticle, bool, bool) {
	if c == nil {
		return nil, false, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry := c.news
	if entry == nil || len(entry.articles) < limit ||
		c.now().Sub(entry.storedAt) >= staleFactor*NewsInterval {
		return nil, false, false
	}
	return append([]domain.NewsArticle{}, entry.articles[:limit]...), entry.degraded, true
}

func (c *Cache) PutCrypto(prices []domain.CryptoPrice, degraded bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.crypto = &cryptoEntry{prices: prices, degraded: degraded, storedAt: c.now()}
}

func (c *Cache) Crypto() ([]domain.CryptoPrice, bool, bool) {
	if c == nil {
		return nil, false, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry := c.crypto
	if entry == nil || c.now().Sub(entry.storedAt) >= staleFactor*CryptoInterval {
		return nil, false, false
	}
	return append([]domain.CryptoPrice{}, entry.prices...), entry.degraded, true
}
