package view

import (
	"fmt"
	"math"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// FormatMoney renders amount in currency using the currency's symbol,
// separators and number of fraction digits.
func FormatMoney(amount decimal.Decimal, currency string) string {
	// money.New never returns a nil currency, unknown codes get defaults.
	cur := money.New(0, currency).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

type dateLayout struct {
	date     string
	dateTime string
}

var (
	supportedLocales = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Portuguese,
	}
	localeLayouts = []dateLayout{
		{"1/2/2006", "1/2/2006, 3:04 PM"},
		{"02/01/2006", "02/01/2006, 15:04"},
		{"2.1.2006", "2.1.2006, 15:04"},
		{"02/01/2006", "02/01/2006 15:04"},
		{"02/01/2006", "02/01/2006, 15:04"},
	}
	isoLayout     = dateLayout{"2006-01-02", "2006-01-02 15:04"}
	localeMatcher = language.NewMatcher(supportedLocales)
)

func layoutFor(locale string) dateLayout {
	tag, err := language.Parse(locale)
	if err != nil {
		return isoLayout
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return isoLayout
	}
	return localeLayouts[idx]
}

// FormatDate renders t for display. Without time, dates within the last
// week are shown relative to now ("Today", "Yesterday", "3 days ago").
func FormatDate(t, now time.Time, locale string, withTime bool) string {
	layout := layoutFor(locale)
	if withTime {
		return t.Format(layout.dateTime)
	}

	days := int(math.Round(now.Sub(t).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days <= 7:
		return fmt.Sprintf("%d days ago", days)
	}
	return t.Format(layout.date)
}
