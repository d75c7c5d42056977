package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/view"
)

func newReportCommand(opts *options) *cobra.Command {
	var over string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize movements across every account",
		Long: "Summarize movements across every account. Amounts are summed as plain\n" +
			"numbers regardless of currency.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := decimal.NewFromString(over)
			if err != nil {
				return fmt.Errorf("parsing --over %q: %w", over, err)
			}
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}

			all := ledger.Flatten(e.store.All())
			deposits, withdrawals := ledger.Split(all)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Accounts\t%d\n", e.store.Len())
			fmt.Fprintf(tw, "Movements\t%d\n", len(all))
			fmt.Fprintf(tw, "Deposits\t%d\t%s\n", len(ledger.Deposits(all)), deposits.StringFixed(2))
			fmt.Fprintf(tw, "Withdrawals\t%d\t%s\n", len(ledger.Withdrawals(all)), withdrawals.StringFixed(2))
			fmt.Fprintf(tw, "Movements of at least %s\t%d\n", threshold.String(), len(ledger.Over(all, threshold)))
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&over, "over", "1000", "count movements at or above this amount")

	return cmd
}

func newAccountsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts and their balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "USERNAME\tOWNER\tCURRENCY\tBALANCE")
			for _, acct := range e.store.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					acct.Username, acct.Owner, acct.Currency,
					view.FormatMoney(ledger.Balance(acct.Movements), acct.Currency))
			}
			return tw.Flush()
		},
	}
}
