// Package ledger derives balances, totals, interest and display orderings
// from an account's movements. Every function is pure: inputs are never
// modified and an empty history yields zero.
package ledger

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// MinInterestCredit is the smallest interest contribution credited for a
// single deposit. Smaller contributions are dropped.
var MinInterestCredit = decimal.NewFromInt(1)

var hundred = decimal.NewFromInt(100)

// Balance returns the sum of all movements.
func Balance(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m)
	}
	return total
}

// TotalIn returns the sum of positive movements.
func TotalIn(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.IsPositive() {
			total = total.Add(m)
		}
	}
	return total
}

// TotalOut returns the sum of negative movements. The result is negative
// (or zero); callers negate it to display a magnitude.
func TotalOut(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.IsNegative() {
			total = total.Add(m)
		}
	}
	return total
}

// Interest returns the interest earned on deposits at rate percent.
// Each deposit contributes amount*rate/100 unless that is below
// MinInterestCredit.
func Interest(movements []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if !m.IsPositive() {
			continue
		}
		credit := m.Mul(rate).Div(hundred)
		if credit.LessThan(MinInterestCredit) {
			continue
		}
		total = total.Add(credit)
	}
	return total
}

// SortedView returns a copy of movements in ascending order.
func SortedView(movements []decimal.Decimal) []decimal.Decimal {
	out := slices.Clone(movements)
	slices.SortStableFunc(out, func(a, b decimal.Decimal) int { return a.Cmp(b) })
	return out
}

// ChronologicalView returns a copy of movements in insertion order.
func ChronologicalView(movements []decimal.Decimal) []decimal.Decimal {
	return slices.Clone(movements)
}

// SortHistory returns a copy of history ordered by ascending amount. Each
// amount keeps its own date and original index.
func SortHistory(history []model.Movement) []model.Movement {
	out := slices.Clone(history)
	slices.SortStableFunc(out, func(a, b model.Movement) int { return a.Amount.Cmp(b.Amount) })
	return out
}

// History returns the account's movements in display order.
func History(acct *model.Account, sorted bool) []model.Movement {
	hist := acct.History()
	if sorted {
		return SortHistory(hist)
	}
	return hist
}
