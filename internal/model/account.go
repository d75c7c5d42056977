package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a customer account with its movement history.
//
// Movements and MovementsDates are parallel: index i of one describes the
// same transaction as index i of the other. Use Append to keep them aligned.
type Account struct {
	ID             uuid.UUID
	Owner          string
	Username       string // derived from Owner by the account store
	PIN            int
	Movements      []decimal.Decimal
	MovementsDates []time.Time
	InterestRate   decimal.Decimal // percent, e.g. 1.2
	Currency       string          // ISO 4217 code
	Locale         string          // BCP 47 tag, e.g. "de-DE"
}

// Append records a movement and returns the new history length.
func (a *Account) Append(amount decimal.Decimal, at time.Time) int {
	a.Movements = append(a.Movements, amount)
	a.MovementsDates = append(a.MovementsDates, at)
	return len(a.Movements)
}

// History returns the movements paired with their dates in insertion order.
func (a *Account) History() []Movement {
	out := make([]Movement, len(a.Movements))
	for i, amt := range a.Movements {
		var at time.Time
		if i < len(a.MovementsDates) {
			at = a.MovementsDates[i]
		}
		out[i] = Movement{Index: i, Amount: amt, Date: at}
	}
	return out
}

// FirstName returns the first token of Owner.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
