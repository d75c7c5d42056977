// Package view turns an account into what the user sees: formatted
// movements, summary figures and the logout timer. Building a Model has no
// side effects; hosts decide how to draw it.
package view

import (
	"slices"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/model"
)

// LoggedOutWelcome is shown when nobody is logged in.
const LoggedOutWelcome = "Log in to get started"

// Row is one displayed movement.
type Row struct {
	Index int    // position in the account's history
	Type  string // "deposit" or "withdrawal"
	Date  string
	Value string
}

// Model is everything a host needs to draw the app.
type Model struct {
	LoggedIn bool
	Welcome  string
	Date     string
	Rows     []Row // top to bottom: newest first, or largest first when sorted
	Balance  string
	In       string
	Out      string // magnitude of outflows
	Interest string
	Timer    string
	Sorted   bool
}

// LoggedOut returns the model shown when nobody is logged in.
func LoggedOut() Model {
	return Model{Welcome: LoggedOutWelcome}
}

// Build returns the model for acct at time now.
func Build(acct *model.Account, sorted bool, countdown string, now time.Time) Model {
	hist := ledger.History(acct, sorted)
	rows := make([]Row, 0, len(hist))
	for _, m := range slices.Backward(hist) {
		rows = append(rows, Row{
			Index: m.Index,
			Type:  string(m.Kind()),
			Date:  FormatDate(m.Date, now, acct.Locale, false),
			Value: FormatMoney(m.Amount, acct.Currency),
		})
	}

	return Model{
		LoggedIn: true,
		Welcome:  "Welcome back, " + titleCaser(acct.Locale).String(acct.FirstName()),
		Date:     FormatDate(now, now, acct.Locale, true),
		Rows:     rows,
		Balance:  FormatMoney(ledger.Balance(acct.Movements), acct.Currency),
		In:       FormatMoney(ledger.TotalIn(acct.Movements), acct.Currency),
		Out:      FormatMoney(ledger.TotalOut(acct.Movements).Neg(), acct.Currency),
		Interest: FormatMoney(ledger.Interest(acct.Movements, acct.InterestRate), acct.Currency),
		Timer:    countdown,
		Sorted:   sorted,
	}
}

func titleCaser(locale string) cases.Caser {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return cases.Title(tag)
}
