package bank

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials means a username/PIN pair did not match.
	ErrInvalidCredentials = errors.New("invalid username or pin")
	// ErrValidation means a transfer or loan precondition was not met.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound means the target account does not exist (or no longer does).
	ErrNotFound = errors.New("account not found")
)

// Rule names a business precondition.
type Rule string

const (
	RulePositiveAmount    Rule = "positive-amount"
	RuleDistinctAccounts  Rule = "distinct-accounts"
	RuleSufficientFunds   Rule = "sufficient-funds"
	RuleQualifyingDeposit Rule = "qualifying-deposit"
	RuleParseableAmount   Rule = "parseable-amount"
)

// ValidationError describes a single unmet precondition.
type ValidationError struct {
	Rule        Rule
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("rule %s: %s", e.Rule, e.Description)
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(rule Rule, format string, args ...any) error {
	return ValidationError{Rule: rule, Description: fmt.Sprintf(format, args...)}
}
