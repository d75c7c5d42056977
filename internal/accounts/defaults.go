package accounts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// DefaultSeed returns the demo accounts the bank starts with.
func DefaultSeed() []model.Account {
	return []model.Account{
		{
			Owner:        "Jonas Schmedtmann",
			PIN:          1111,
			InterestRate: decimal.RequireFromString("1.2"),
			Currency:     "EUR",
			Locale:       "de-DE",
			Movements:    amounts("200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300"),
			MovementsDates: dates(
				"2019-11-18T21:31:17.178Z",
				"2019-12-23T07:42:02.383Z",
				"2020-01-28T09:15:04.904Z",
				"2020-04-01T10:17:24.185Z",
				"2020-05-08T14:11:59.604Z",
				"2020-05-27T17:01:17.194Z",
				"2020-07-11T23:36:17.929Z",
				"2020-07-12T10:51:36.790Z",
			),
		},
		{
			Owner:        "Nick Haras",
			PIN:          2222,
			InterestRate: decimal.RequireFromString("1.5"),
			Currency:     "USD",
			Locale:       "en-US",
			Movements:    amounts("5000", "3400", "-150.01", "-790", "-3210.5", "-1000", "8500", "-30.23"),
			MovementsDates: dates(
				"2019-11-01T13:15:33.035Z",
				"2019-11-30T09:48:16.867Z",
				"2019-12-25T06:04:23.907Z",
				"2020-01-25T14:18:46.235Z",
				"2020-02-05T16:33:06.386Z",
				"2021-02-10T14:43:26.374Z",
				"2021-03-04T18:49:59.371Z",
				"2021-03-08T12:01:20.894Z",
			),
		},
	}
}

func amounts(ss ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		out[i] = decimal.RequireFromString(s)
	}
	return out
}

func dates(ss ...string) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic("invalid seed date " + s)
		}
		out[i] = t
	}
	return out
}
