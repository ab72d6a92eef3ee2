package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StartingCash is the virtual balance every new portfolio begins with.
var StartingCash = decimal.NewFromInt(100000)

// Holding is a position in a single ticker. Quantity is whole shares;
// fractional quantities are rejected at validation.
type Holding struct {
	Symbol       string          `json:"symbol"`
	Quantity     int64           `json:"quantity"`
	AverageCost  decimal.Decimal `json:"averageCost"`
	PurchaseDate time.Time       `json:"purchaseDate"`
}

func (h Holding) CostBasis() decimal.Decimal {
	return h.AverageCost.Mul(decimal.NewFromInt(h.Quantity))
}

// Portfolio owns the virtual cash balance and the set of holdings, keyed
// by symbol. A holding with zero quantity must never appear in the map.
type Portfolio struct {
	Cash     decimal.Decimal     `json:"cash"`
	Holdings map[string]*Holding `json:"holdings"`
}

func NewPortfolio() *Portfolio {
	return &Portfolio{
		Cash:     StartingCash,
		Holdings: map[string]*Holding{},
	}
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for symbol := range p.Holdings {
		symbols = append(symbols, symbol)
	}
	return symbols
}

func (p Portfolio) DeepCopy() *Portfolio {
	out := &Portfolio{
		Cash:     p.Cash,
		Holdings: map[string]*Holding{},
	}
	for symbol, holding := range p.Holdings {
		h := *holding
		out.Holdings[symbol] = &h
	}
	return out
}

// TotalValue is cash plus the market value of every holding. Symbols
// missing from the price map contribute zero rather than failing, so a
// partially refreshed quote set still renders.
func (p Portfolio) TotalValue(prices map[string]decimal.Decimal) decimal.Decimal {
	total := p.Cash
	for symbol, holding := range p.Holdings {
		if price, ok := prices[symbol]; ok {
			total = total.Add(price.Mul(decimal.NewFromInt(holding.Quantity)))
		}
	}
	return total
}

type TransactionSide string

const (
	TransactionSide_Buy  TransactionSide = "BUY"
	TransactionSide_Sell TransactionSide = "SELL"
)

// Transaction records one executed simulated fill.
type Transaction struct {
	TransactionID uuid.UUID       `json:"transactionID" csv:"transaction_id"`
	Side          TransactionSide `json:"side" csv:"side"`
	Symbol        string          `json:"symbol" csv:"symbol"`
	Quantity      int64           `json:"quantity" csv:"quantity"`
	Price         decimal.Decimal `json:"price" csv:"price"`
	Amount        decimal.Decimal `json:"amount" csv:"amount"`
	CreatedAt     time.Time       `json:"createdAt" csv:"created_at"`
}
