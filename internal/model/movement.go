package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a movement by its sign.
type MovementKind string

const (
	KindDeposit    MovementKind = "deposit"
	KindWithdrawal MovementKind = "withdrawal"
)

// Movement is one transaction of an account: a signed amount and its date.
type Movement struct {
	Index  int // position in the account's insertion order
	Amount decimal.Decimal
	Date   time.Time
}

// Kind reports whether the movement is a deposit or a withdrawal.
// Zero amounts count as deposits.
func (m Movement) Kind() MovementKind {
	if m.Amount.IsNegative() {
		return KindWithdrawal
	}
	return KindDeposit
}
