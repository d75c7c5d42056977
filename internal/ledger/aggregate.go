package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// Flatten concatenates the movements of all accounts, account by account.
func Flatten(accounts []*model.Account) []decimal.Decimal {
	var out []decimal.Decimal
	for _, a := range accounts {
		out = append(out, a.Movements...)
	}
	return out
}

// Deposits returns the positive movements.
func Deposits(movements []decimal.Decimal) []decimal.Decimal {
	return filter(movements, decimal.Decimal.IsPositive)
}

// Withdrawals returns the negative movements.
func Withdrawals(movements []decimal.Decimal) []decimal.Decimal {
	return filter(movements, decimal.Decimal.IsNegative)
}

// Over returns the movements greater than or equal to threshold.
func Over(movements []decimal.Decimal, threshold decimal.Decimal) []decimal.Decimal {
	return filter(movements, func(m decimal.Decimal) bool { return m.GreaterThanOrEqual(threshold) })
}

// Split returns the deposit total and the withdrawal total in one pass.
func Split(movements []decimal.Decimal) (deposits, withdrawals decimal.Decimal) {
	deposits, withdrawals = decimal.Zero, decimal.Zero
	for _, m := range movements {
		if m.IsPositive() {
			deposits = deposits.Add(m)
		} else {
			withdrawals = withdrawals.Add(m)
		}
	}
	return deposits, withdrawals
}

func filter(movements []decimal.Decimal, keep func(decimal.Decimal) bool) []decimal.Decimal {
	var out []decimal.Decimal
	for _, m := range movements {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
