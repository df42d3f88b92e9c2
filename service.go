package bankxterm

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type ChargeReq struct {
	Kind   AccountKind
	Amount decimal.Decimal
}

type BalanceReq struct {
	Kind AccountKind
}

type StatementReq struct {
	Kind AccountKind
}

type Service interface {
	Deposit(ChargeReq) (*decimal.Decimal, error)
	Withdraw(ChargeReq) (*decimal.Decimal, error)
	Balance(BalanceReq) (*decimal.Decimal, error)
	Statement(io.Writer, StatementReq) error
}

var (
	_ Service = (*serviceImpl)(nil)
)

// NewService returns an error if the repository lacks either account kind.
func NewService(repo Repository, log *zerolog.Logger) (*serviceImpl, error) {
	for _, k := range []AccountKind{Savings, Current} {
		if _, err := repo.GetAccount(k); err != nil {
			log.Err(err).Str("kind", string(k)).Msg("account missing from repository")
			return nil, err
		}
	}
	return &serviceImpl{
		repo: repo,
		log:  log,
		now:  time.Now,
	}, nil
}

type serviceImpl struct {
	repo Repository
	log  *zerolog.Logger
	now  func() time.Time
}

func (s *serviceImpl) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	acct, err := s.repo.GetAccount(req.Kind)
	if err != nil {
		return nil, err
	}
	bal, err := acct.Deposit(req.Amount)
	if err != nil {
		return nil, err
	}
	return &bal, nil
}

func (s *serviceImpl) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	acct, err := s.repo.GetAccount(req.Kind)
	if err != nil {
		return nil, err
	}
	bal, err := acct.Withdraw(req.Amount)
	if err != nil {
		return nil, err
	}
	return &bal, nil
}

func (s *serviceImpl) Balance(req BalanceReq) (*decimal.Decimal, error) {
	acct, err := s.repo.GetAccount(req.Kind)
	if err != nil {
		return nil, err
	}
	bal := acct.Balance()
	return &bal, nil
}

func (s *serviceImpl) Statement(w io.Writer, req StatementReq) error {
	acct, err := s.repo.GetAccount(req.Kind)
	if err != nil {
		return err
	}
	slip := BalanceSlip{
		AcctID:   acct.ID(),
		Kind:     acct.Kind(),
		Balance:  acct.Balance(),
		Floor:    acct.Floor(),
		IssuedAt: s.now(),
	}
	if err = WriteBalanceSlip(w, slip); err != nil {
		s.log.Err(err).Str("method", "statement").Str("kind", string(req.Kind)).Msg("error rendering balance slip")
		return err
	}
	return nil
}
