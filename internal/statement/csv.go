package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/model"
)

// Header is the CSV header of an account statement.
const Header = "index,type,date,amount,currency"

const (
	numFields   = 5
	colIndex    = 0
	colType     = 1
	colDate     = 2
	colAmount   = 3
	colCurrency = 4
)

// Write writes the account's movements as CSV, in chronological order or
// sorted by amount.
func Write(w io.Writer, acct *model.Account, sorted bool) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, m := range ledger.History(acct, sorted) {
		if err := cw.Write(MarshalMovement(m, acct.Currency)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalMovement converts a movement to a CSV row.
func MarshalMovement(m model.Movement, currency string) []string {
	row := make([]string, numFields)
	row[colIndex] = strconv.Itoa(m.Index)
	row[colType] = string(m.Kind())
	row[colDate] = m.Date.UTC().Format(time.RFC3339)
	row[colAmount] = m.Amount.StringFixed(2)
	row[colCurrency] = currency
	return row
}
