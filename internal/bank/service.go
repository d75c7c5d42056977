// Package bank applies money movements between accounts: transfers, loans
// and account closure. Preconditions are checked before anything is
// appended, so a declined request never changes state.
package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/model"
)

// Service validates and applies account mutations against a Store.
type Service struct {
	store    *accounts.Store
	log      *logrus.Logger
	minRatio decimal.Decimal
	delay    time.Duration
	now      func() time.Time
}

// NewService creates a bank Service.
func NewService(store *accounts.Store, loan config.LoanConfig, log *logrus.Logger) *Service {
	return &Service{
		store:    store,
		log:      log,
		minRatio: decimal.NewFromFloat(loan.MinDepositRatio),
		delay:    loan.Delay,
		now:      time.Now,
	}
}

// Store returns the account store the service mutates.
func (s *Service) Store() *accounts.Store {
	return s.store
}

// ParseAmount converts user input to an amount.
func ParseAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero, invalid(RuleParseableAmount, "%q is not a number", input)
	}
	return amount, nil
}

// Authenticate returns the account matching username and the PIN input.
func (s *Service) Authenticate(username, pinInput string) (*model.Account, error) {
	pin, err := accounts.ParsePIN(pinInput)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	acct, ok := s.store.Find(username, pin)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

// Transfer moves amount from one account to another. Both sides are
// appended with the same timestamp, or neither is.
func (s *Service) Transfer(from, to *model.Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalid(RulePositiveAmount, "transfer amount %s must be positive", amount)
	}
	if to == nil {
		return fmt.Errorf("transfer target: %w", ErrNotFound)
	}
	if to.ID == from.ID {
		return invalid(RuleDistinctAccounts, "cannot transfer to own account %s", from.Username)
	}
	if balance := ledger.Balance(from.Movements); amount.GreaterThan(balance) {
		return invalid(RuleSufficientFunds, "amount %s exceeds balance %s", amount.StringFixed(2), balance.StringFixed(2))
	}

	at := s.now()
	to.Append(amount, at)
	from.Append(amount.Neg(), at)

	s.log.WithFields(logrus.Fields{
		"from":   from.Username,
		"to":     to.Username,
		"amount": amount.StringFixed(2),
	}).Info("transfer applied")
	return nil
}

// TransferTo resolves the target by username and transfers amount to it.
func (s *Service) TransferTo(from *model.Account, username string, amount decimal.Decimal) error {
	to, ok := s.store.Lookup(username)
	if !ok {
		return fmt.Errorf("transfer target %q: %w", username, ErrNotFound)
	}
	return s.Transfer(from, to, amount)
}

// CloseAccount removes current from the store when the given credentials
// match it.
func (s *Service) CloseAccount(current *model.Account, username string, pin int) error {
	if current.Username != username || current.PIN != pin {
		return ErrInvalidCredentials
	}
	if !s.store.Delete(current.ID) {
		return fmt.Errorf("closing %s: %w", username, ErrNotFound)
	}
	s.log.WithField("username", username).Info("account closed")
	return nil
}
