package bank

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/model"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newAccount builds a seed account whose movements are all dated a day
// before testNow.
func newAccount(owner string, pin int, movements ...string) model.Account {
	acct := model.Account{Owner: owner, PIN: pin, Currency: "EUR", Locale: "de-DE"}
	for _, m := range movements {
		acct.Append(dec(m), testNow.AddDate(0, 0, -1))
	}
	return acct
}

func newTestService(seed ...model.Account) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewService(accounts.NewStore(seed), config.Default().Loan, log)
	svc.now = func() time.Time { return testNow }
	return svc
}

func mustLookup(svc *Service, username string) *model.Account {
	acct, ok := svc.Store().Lookup(username)
	if !ok {
		panic("no account " + username)
	}
	return acct
}
