package bankxterm

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for non-positive transaction amounts.
type ErrInvalidAmount struct {
	Amount decimal.Decimal
}

func (e ErrInvalidAmount) Error() string {
	return fmt.Sprintf("invalid amount %s: please enter a positive value", e.Amount)
}

// ErrInsufficientFunds is returned when a withdrawal would take the balance
// below the account's floor.
type ErrInsufficientFunds struct {
	Balance decimal.Decimal
	Amount  decimal.Decimal
	Floor   decimal.Decimal
}

func (e ErrInsufficientFunds) Error() string {
	if e.Floor.IsZero() {
		return "insufficient balance"
	}
	return fmt.Sprintf("insufficient balance: withdrawals would reduce your balance below the minimum allowed of %s", e.Floor)
}

type ErrNotFound struct {
	Kind AccountKind
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("account not found: %s", e.Kind)
}

type ErrInvalidConfig struct {
	Fields map[string]string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("missing/invalid config: %v", e.Fields)
}
