package bankxterm

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	Savings AccountKind = "savings"
	Current AccountKind = "current"
)

// Title is the capitalised kind used in menu headers.
func (k AccountKind) Title() string {
	switch k {
	case Savings:
		return "Savings"
	case Current:
		return "Current"
	default:
		return string(k)
	}
}

// SavingsMinimumBalance is the floor a savings balance never drops below.
var SavingsMinimumBalance = decimal.NewFromInt(1000)

// Account is the capability set shared by every account variant. Deposit and
// Withdraw return the balance after the call; on error the balance is unchanged.
type Account interface {
	ID() snowflake.ID
	Kind() AccountKind
	Deposit(amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(amount decimal.Decimal) (decimal.Decimal, error)
	Balance() decimal.Decimal
	// Floor is the lowest balance a withdrawal may leave behind.
	Floor() decimal.Decimal
}

var (
	_ Account = (*SavingsAccount)(nil)
	_ Account = (*CurrentAccount)(nil)
)

type SavingsAccount struct {
	acctID  snowflake.ID
	balance decimal.Decimal
}

// NewSavingsAccount opens a savings account. Opening balances under
// SavingsMinimumBalance are raised to it.
func NewSavingsAccount(id snowflake.ID, opening decimal.Decimal) *SavingsAccount {
	if opening.LessThan(SavingsMinimumBalance) {
		opening = SavingsMinimumBalance
	}
	return &SavingsAccount{
		acctID:  id,
		balance: opening,
	}
}

func (s *SavingsAccount) ID() snowflake.ID         { return s.acctID }
func (s *SavingsAccount) Kind() AccountKind        { return Savings }
func (s *SavingsAccount) Balance() decimal.Decimal { return s.balance }
func (s *SavingsAccount) Floor() decimal.Decimal   { return SavingsMinimumBalance }

func (s *SavingsAccount) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	s.balance = s.balance.Add(amount)
	return s.balance, nil
}

func (s *SavingsAccount) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return s.balance, ErrInvalidAmount{Amount: amount}
	}
	if s.balance.Sub(amount).LessThan(SavingsMinimumBalance) {
		return s.balance, ErrInsufficientFunds{
			Balance: s.balance,
			Amount:  amount,
			Floor:   SavingsMinimumBalance,
		}
	}
	s.balance = s.balance.Sub(amount)
	return s.balance, nil
}

// CurrentAccount has no minimum balance. Its Withdraw only guards against
// overdraft; amount positivity is checked upstream by the validation middleware.
type CurrentAccount struct {
	acctID  snowflake.ID
	balance decimal.Decimal
}

func NewCurrentAccount(id snowflake.ID, opening decimal.Decimal) *CurrentAccount {
	return &CurrentAccount{
		acctID:  id,
		balance: opening,
	}
}

func (c *CurrentAccount) ID() snowflake.ID         { return c.acctID }
func (c *CurrentAccount) Kind() AccountKind        { return Current }
func (c *CurrentAccount) Balance() decimal.Decimal { return c.balance }
func (c *CurrentAccount) Floor() decimal.Decimal   { return decimal.Zero }

func (c *CurrentAccount) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	c.balance = c.balance.Add(amount)
	return c.balance, nil
}

func (c *CurrentAccount) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.GreaterThan(c.balance) {
		return c.balance, ErrInsufficientFunds{
			Balance: c.balance,
			Amount:  amount,
			Floor:   decimal.Zero,
		}
	}
	c.balance = c.balance.Sub(amount)
	return c.balance, nil
}
