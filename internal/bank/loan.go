package bank

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/bankist-dev/bankist/internal/model"
)

// PendingLoan is an approved loan waiting for its processing delay to pass.
// It refers to the account by ID so settlement can tell whether the account
// still exists.
type PendingLoan struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	RequestedAt time.Time
	DueAt       time.Time
}

// Delay returns how long after the request the loan settles.
func (p *PendingLoan) Delay() time.Duration {
	return p.DueAt.Sub(p.RequestedAt)
}

// RequestLoan approves or declines a loan. A loan is approved when amount
// is positive and at least one deposit reaches the minimum ratio of it.
// Approval returns a PendingLoan to settle later; nothing is credited yet.
func (s *Service) RequestLoan(acct *model.Account, amount decimal.Decimal) (*PendingLoan, error) {
	if !amount.IsPositive() {
		return nil, invalid(RulePositiveAmount, "loan amount %s must be positive", amount)
	}

	required := amount.Mul(s.minRatio)
	qualifies := false
	for _, m := range acct.Movements {
		if m.IsPositive() && m.GreaterThanOrEqual(required) {
			qualifies = true
			break
		}
	}
	if !qualifies {
		s.log.WithFields(logrus.Fields{
			"account":  acct.Username,
			"amount":   amount.StringFixed(2),
			"required": required.StringFixed(2),
		}).Info("loan declined")
		return nil, invalid(RuleQualifyingDeposit, "no deposit of at least %s", required.StringFixed(2))
	}

	now := s.now()
	p := &PendingLoan{
		ID:          uuid.New(),
		AccountID:   acct.ID,
		Amount:      amount,
		RequestedAt: now,
		DueAt:       now.Add(s.delay),
	}
	s.log.WithFields(logrus.Fields{
		"account": acct.Username,
		"loan":    p.ID,
		"amount":  amount.StringFixed(2),
		"due":     p.DueAt.Format(time.RFC3339),
	}).Info("loan approved")
	return p, nil
}

// SettleLoan credits a pending loan to its account's current state. If the
// account was closed in the meantime nothing is credited and ErrNotFound is
// returned.
func (s *Service) SettleLoan(p *PendingLoan) (*model.Account, error) {
	acct, ok := s.store.ByID(p.AccountID)
	if !ok {
		s.log.WithField("loan", p.ID).Warn("loan settled after account closure, dropped")
		return nil, fmt.Errorf("settling loan %s: %w", p.ID, ErrNotFound)
	}
	acct.Append(p.Amount, s.now())
	s.log.WithFields(logrus.Fields{
		"account": acct.Username,
		"loan":    p.ID,
		"amount":  p.Amount.StringFixed(2),
	}).Info("loan credited")
	return acct, nil
}
