package bankxterm

import (
	"io"

	"github.com/shopspring/decimal"
)

var (
	_ Service = (*validationMiddleware)(nil)
)

type Middleware func(Service) Service

// validationMiddleware rejects unknown account kinds and non-positive amounts
// before a request reaches an account. Deposits and withdrawals on both
// variants therefore only ever see positive amounts when routed through it.
type validationMiddleware struct {
	next Service
	repo Repository
}

func NewValidationMiddleware(repo Repository) Middleware {
	return func(svc Service) Service {
		return &validationMiddleware{
			next: svc,
			repo: repo,
		}
	}
}

func (v *validationMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	if err := v.validateCharge(req); err != nil {
		return nil, err
	}
	return v.next.Deposit(req)
}

func (v *validationMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	if err := v.validateCharge(req); err != nil {
		return nil, err
	}
	return v.next.Withdraw(req)
}

func (v *validationMiddleware) Balance(req BalanceReq) (*decimal.Decimal, error) {
	if _, err := v.repo.GetAccount(req.Kind); err != nil {
		return nil, err
	}
	return v.next.Balance(req)
}

func (v *validationMiddleware) Statement(w io.Writer, req StatementReq) error {
	if _, err := v.repo.GetAccount(req.Kind); err != nil {
		return err
	}
	return v.next.Statement(w, req)
}

func (v *validationMiddleware) validateCharge(req ChargeReq) error {
	if !req.Amount.IsPositive() {
		return ErrInvalidAmount{Amount: req.Amount}
	}
	_, err := v.repo.GetAccount(req.Kind)
	return err
}
