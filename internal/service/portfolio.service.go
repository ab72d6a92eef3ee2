package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"papertrade/internal/calc"
	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidationError is a user-correctable rejection (insufficient funds,
// insufficient shares, bad quantity). Resolvers surface it as a 400 with
// the message verbatim; nothing has been mutated when one is returned.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// PortfolioService is the sole authority over cash and holdings. All
// mutation goes through Buy/Sell/Reset/Import; reads get deep copies so
// callers can never write portfolio state from outside.
type PortfolioService interface {
	Get(ctx context.Context) *domain.Portfolio
	Buy(ctx context.Context, symbol string, quantity int64, price decimal.Decimal) (*domain.Transaction, error)
	Sell(ctx context.Context, symbol string, quantity int64, price decimal.Decimal) (*domain.Transaction, error)
	Reset(ctx context.Context) error
	Reload(ctx context.Context) error
	Transactions(ctx context.Context) []domain.Transaction
}

type portfolioServiceHandler struct {
	mu           sync.Mutex
	portfolio    *domain.Portfolio
	transactions []domain.Transaction
	store        store.Store
	now          func() time.Time
}

// NewPortfolioService restores saved state, or starts a fresh portfolio
// with the standard virtual balance when nothing is saved yet. A failed
// load is treated as absent state: the session continues in memory.
func NewPortfolioService(ctx context.Context, s store.Store) PortfolioService {
	log := logger.FromContext(ctx)

	portfolio, err := s.LoadPortfolio()
	if err != nil {
		log.Errorf("failed to load portfolio, starting fresh: %v", err)
	}
	if portfolio == nil {
		portfolio = domain.NewPortfolio()
	}

	transactions, err := s.LoadTransactions()
	if err != nil {
		log.Errorf("failed to load transactions: %v", err)
	}

	return &portfolioServiceHandler{
		portfolio:    portfolio,
		transactions: transactions,
		store:        s,
		now:          time.Now,
	}
}

func (h *portfolioServiceHandler) Get(ctx context.Context) *domain.Portfolio {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.portfolio.DeepCopy()
}

func (h *portfolioServiceHandler) Buy(ctx context.Context, symbol string, quantity int64, price decimal.Decimal) (*domain.Transaction, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ValidationError{Message: "Invalid symbol"}
	}

	result := calc.ValidateBuy(quantity, price, h.portfolio.Cash)
	if !result.Valid {
		return nil, ValidationError{Message: result.Message}
	}

	now := h.now().UTC()
	if holding, ok := h.portfolio.Holdings[symbol]; ok {
		// merge into the existing position at the volume-weighted cost
		newQuantity := holding.Quantity + quantity
		holding.AverageCost = holding.CostBasis().
			Add(result.TotalCost).
			Div(decimal.NewFromInt(newQuantity))
		holding.Quantity = newQuantity
		holding.PurchaseDate = now
	} else {
		h.portfolio.Holdings[symbol] = &domain.Holding{
			Symbol:       symbol,
			Quantity:     quantity,
			AverageCost:  price,
			PurchaseDate: now,
		}
	}
	h.portfolio.Cash = h.portfolio.Cash.Sub(result.TotalCost)

	transaction := h.record(domain.TransactionSide_Buy, symbol, quantity, price, result.TotalCost, now)
	h.persist(ctx)

	return transaction, nil
}

func (h *portfolioServiceHandler) Sell(ctx context.Context, symbol string, quantity int64, price decimal.Decimal) (*domain.Transaction, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	holding := h.portfolio.Holdings[symbol]

	result := calc.ValidateSell(quantity, holding)
	if !result.Valid {
		return nil, ValidationError{Message: result.Message}
	}
	if !price.IsPositive() {
		return nil, ValidationError{Message: "Invalid price"}
	}

	totalRevenue := price.Mul(decimal.NewFromInt(quantity))
	if quantity == holding.Quantity {
		delete(h.portfolio.Holdings, symbol)
	} else {
		// realized gain is tracked only in aggregate; the cost basis of
		// the remaining shares is unchanged
		holding.Quantity -= quantity
	}
	h.portfolio.Cash = h.portfolio.Cash.Add(totalRevenue)

	now := h.now().UTC()
	transaction := h.record(domain.TransactionSide_Sell, symbol, quantity, price, totalRevenue, now)
	h.persist(ctx)

	return transaction, nil
}

func (h *portfolioServiceHandler) Reset(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.portfolio = domain.NewPortfolio()
	h.transactions = nil
	h.persist(ctx)
	return nil
}

// Reload replaces in-memory state with whatever the store holds now.
// Used after an import writes new blobs underneath a live session.
func (h *portfolioServiceHandler) Reload(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	portfolio, err := h.store.LoadPortfolio()
	if err != nil {
		return err
	}
	if portfolio == nil {
		portfolio = domain.NewPortfolio()
	}
	transactions, err := h.store.LoadTransactions()
	if err != nil {
		return err
	}

	h.portfolio = portfolio
	h.transactions = transactions
	return nil
}

func (h *portfolioServiceHandler) Transactions(ctx context.Context) []domain.Transaction {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.Transaction{}, h.transactions...)
}

func (h *portfolioServiceHandler) record(side domain.TransactionSide, symbol string, quantity int64, price, amount decimal.Decimal, at time.Time) *domain.Transaction {
	transaction := domain.Transaction{
		TransactionID: uuid.New(),
		Side:          side,
		Symbol:        symbol,
		Quantity:      quantity,
		Price:         price,
		Amount:        amount,
		CreatedAt:     at,
	}
	h.transactions = append(h.transactions, transaction)
	return &transaction
}

// persist writes the mutated state back. Store failures are logged and
// swallowed: losing saved state on reload is acceptable for a simulator,
// blocking a trade on a disk error is not. Caller must hold h.mu so the
// write is ordered after the in-memory mutation.
func (h *portfolioServiceHandler) persist(ctx context.Context) {
	log := logger.FromContext(ctx)
	if err := h.store.SavePortfolio(h.portfolio); err != nil {
		log.Errorf("failed to save portfolio: %v", err)
	}
	if err := h.store.SaveTransactions(h.transactions); err != nil {
		log.Errorf("failed to save transactions: %v", err)
	}
}
