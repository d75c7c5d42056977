package view

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText draws m as plain text.
func WriteText(w io.Writer, m Model) error {
	if !m.LoggedIn {
		_, err := fmt.Fprintln(w, m.Welcome)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tAs of %s\n", m.Welcome, m.Date)
	fmt.Fprintf(tw, "Current balance\t%s\n", m.Balance)
	fmt.Fprintln(tw)
	for _, r := range m.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Index, r.Type, r.Date, r.Value)
	}
	fmt.Fprintln(tw)
	order := "chronological"
	if m.Sorted {
		order = "sorted"
	}
	fmt.Fprintf(tw, "In %s\tOut %s\tInterest %s\t(%s)\n", m.In, m.Out, m.Interest, order)
	fmt.Fprintf(tw, "You will be logged out in %s\n", m.Timer)
	return tw.Flush()
}
