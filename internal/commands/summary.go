package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/session"
	"github.com/bankist-dev/bankist/internal/statement"
	"github.com/bankist-dev/bankist/internal/view"
)

// credentials are the login flags shared by summary and statement.
type credentials struct {
	user   string
	pin    string
	sorted bool
}

func (c *credentials) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.user, "user", "", "username (required)")
	cmd.Flags().StringVar(&c.pin, "pin", "", "PIN (required)")
	cmd.Flags().BoolVar(&c.sorted, "sort", false, "order movements by amount")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pin")
}

func (c *credentials) login(e *env) (*model.Account, error) {
	acct, err := e.bank.Authenticate(c.user, c.pin)
	if err != nil {
		return nil, fmt.Errorf("logging in as %s: %w", c.user, err)
	}
	return acct, nil
}

func newSummaryCommand(opts *options) *cobra.Command {
	var creds credentials

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show an account's balance, movements and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			acct, err := creds.login(e)
			if err != nil {
				return err
			}

			sess := session.New(e.cfg.Session.Timeout)
			sess.Login(acct)
			return view.WriteText(cmd.OutOrStdout(), view.Build(acct, creds.sorted, sess.Countdown(), time.Now()))
		},
	}
	creds.register(cmd)

	return cmd
}

func newStatementCommand(opts *options) *cobra.Command {
	var creds credentials

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Export an account's movements as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			acct, err := creds.login(e)
			if err != nil {
				return err
			}
			return statement.Write(cmd.OutOrStdout(), acct, creds.sorted)
		},
	}
	creds.register(cmd)

	return cmd
}
