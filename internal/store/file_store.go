package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"papertrade/internal/domain"
)

// Storage keys mirror the browser dashboard's localStorage namespace so an
// exported blob from either side imports cleanly into the other.
const (
	portfolioKey    = "stock_dashboard_portfolio"
	watchlistKey    = "stock_dashboard_watchlist"
	settingsKey     = "stock_dashboard_settings"
	transactionsKey = "stock_dashboard_transactions"
)

// Store is the persistence contract for session state. Load methods
// return nil (or nil slice) without error when nothing has been saved
// yet. There are no transactional guarantees beyond single-key atomic
// overwrite.
type Store interface {
	LoadPortfolio() (*domain.Portfolio, error)
	SavePortfolio(p *domain.Portfolio) error
	LoadWatchlist() ([]string, error)
	SaveWatchlist(symbols []string) error
	LoadSettings() (*domain.Settings, error)
	SaveSettings(s domain.Settings) error
	LoadTransactions() ([]domain.Transaction, error)
	SaveTransactions(transactions []domain.Transaction) error
	ExportAll() ([]byte, error)
	ImportAll(blob []byte) error
	Clear() error
}

// fileStore keeps each key as <key>.json inside a base directory. Writes
// go through a temp file and rename so a crash mid-write never leaves a
// torn blob behind.
type fileStore struct {
	baseDir string
	mu      sync.RWMutex
}

func NewFileStore(baseDir string) Store {
	return &fileStore{baseDir: baseDir}
}

func (s *fileStore) pathFor(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}

func (s *fileStore) writeKey(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.baseDir, key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.pathFor(key))
}

// readKey decodes a stored key into out. Returns false when the key has
// never been written.
func (s *fileStore) readKey(key string, out any) (bool, error) {
	data, err := os.ReadFile(s.pathFor(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *fileStore) LoadPortfolio() (*domain.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p domain.Portfolio
	ok, err := s.readKey(portfolioKey, &p)
	if err != nil || !ok {
		return nil, err
	}
	if p.Holdings == nil {
		p.Holdings = map[string]*domain.Holding{}
	}
	return &p, nil
}

func (s *fileStore) SavePortfolio(p *domain.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeKey(portfolioKey, p)
}

func (s *fileStore) LoadWatchlist() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var symbols []string
	ok, err := s.readKey(watchlistKey, &symbols)
	if err != nil || !ok {
		return nil, err
	}
	return symbols, nil
}

func (s *fileStore) SaveWatchlist(symbols []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeKey(watchlistKey, symbols)
}

func (s *fileStore) LoadSettings() (*domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var settings domain.Settings
	ok, err := s.readKey(settingsKey, &settings)
	if err != nil || !ok {
		return nil, err
	}
	return &settings, nil
}

func (s *fileStore) SaveSettings(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeKey(settingsKey, settings)
}

func (s *fileStore) LoadTransactions() ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var transactions []domain.Transaction
	ok, err := s.readKey(transactionsKey, &transactions)
	if err != nil || !ok {
		return nil, err
	}
	return transactions, nil
}

func (s *fileStore) SaveTransactions(transactions []domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeKey(transactionsKey, transactions)
}

// exportEnvelope is the backup blob format. Nil sections are omitted on
// import so a partial backup only overwrites what it carries.
type exportEnvelope struct {
	Portfolio    *domain.Portfolio    `json:"portfolio"`
	Watchlist    []string             `json:"watchlist"`
	Settings     *domain.Settings     `json:"settings"`
	Transactions []domain.Transaction `json:"transactions"`
	ExportDate   time.Time            `json:"exportDate"`
}

func (s *fileStore) ExportAll() ([]byte, error) {
	portfolio, err := s.LoadPortfolio()
	if err != nil {
		return nil, err
	}
	watchlist, err := s.LoadWatchlist()
	if err != nil {
		return nil, err
	}
	settings, err := s.LoadSettings()
	if err != nil {
		return nil, err
	}
	transactions, err := s.LoadTransactions()
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(exportEnvelope{
		Portfolio:    portfolio,
		Watchlist:    watchlist,
		Settings:     settings,
		Transactions: transactions,
		ExportDate:   time.Now().UTC(),
	}, "", "  ")
}

func (s *fileStore) ImportAll(blob []byte) error {
	var envelope exportEnvelope
	if err := json.Unmarshal(blob, &envelope); err != nil {
		return fmt.Errorf("failed to parse import blob: %w", err)
	}

	if envelope.Portfolio != nil {
		if envelope.Portfolio.Holdings == nil {
			envelope.Portfolio.Holdings = map[string]*domain.Holding{}
		}
		if err := s.SavePortfolio(envelope.Portfolio); err != nil {
			return err
		}
	}
	if envelope.Watchlist != nil {
		if err := s.SaveWatchlist(envelope.Watchlist); err != nil {
			return err
		}
	}
	if envelope.Settings != nil {
		if err := s.SaveSettings(*envelope.Settings); err != nil {
			return err
		}
	}
	if envelope.Transactions != nil {
		if err := s.SaveTransactions(envelope.Transactions); err != nil {
			return err
		}
	}

	return nil
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{portfolioKey, watchlistKey, settingsKey, transactionsKey} {
		if err := os.Remove(s.pathFor(key)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
