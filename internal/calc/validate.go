package calc

import (
	"papertrade/internal/domain"

	"github.com/shopspring/decimal"
)

// ValidationResult is the outcome of a pre-trade policy check. The
// portfolio service re-enforces the same invariants before mutating, so a
// stale result here can never corrupt state.
type ValidationResult struct {
	Valid     bool
	Message   string
	TotalCost decimal.Decimal
}

// ValidateBuy checks a proposed purchase against available cash.
// Quantities are whole shares; zero and negative counts are rejected.
func ValidateBuy(quantity int64, price decimal.Decimal, availableCash decimal.Decimal) ValidationResult {
	if quantity <= 0 {
		return ValidationResult{Valid: false, Message: "Quantity must be greater than 0"}
	}
	if !price.IsPositive() {
		return ValidationResult{Valid: false, Message: "Invalid price"}
	}

	totalCost := price.Mul(decimal.NewFromInt(quantity))
	if totalCost.GreaterThan(availableCash) {
		return ValidationResult{Valid: false, Message: "Insufficient funds"}
	}

	return ValidationResult{Valid: true, TotalCost: totalCost}
}

// ValidateSell checks a proposed sale against the current holding, which
// may be nil when there is no position in the symbol.
func ValidateSell(quantity int64, holding *domain.Holding) ValidationResult {
	if holding == nil {
		return ValidationResult{Valid: false, Message: "No position in this stock"}
	}
	if quantity <= 0 {
		return ValidationResult{Valid: false, Message: "Quantity must be greater than 0"}
	}
	if quantity > holding.Quantity {
		return ValidationResult{Valid: false, Message: "Insufficient shares"}
	}

	return ValidationResult{Valid: true}
}
