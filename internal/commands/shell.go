package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/app"
	"github.com/bankist-dev/bankist/internal/view"
)

const shellHelp = `commands:
  login <user> <pin>
  transfer <user> <amount>
  loan <amount>
  close <user> <pin>
  sort
  logout
  quit`

func newShellCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the bank interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runShell(cmd.Context(), e, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runShell(ctx context.Context, e *env, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	host := &terminal{w: out}
	c := app.New(e.bank, e.cfg, host, e.log)

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	host.Render(view.LoggedOut())
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}
		action, err := parseAction(fields)
		if err != nil {
			host.Printf("%v\n%s\n", err, shellHelp)
			continue
		}
		if err := c.Dispatch(ctx, action); err != nil {
			return err
		}
	}

	cancel()
	if err := <-done; err != nil {
		return err
	}
	return scanner.Err()
}

func parseAction(fields []string) (app.Action, error) {
	name, args := fields[0], fields[1:]
	want := map[string]int{
		"login": 2, "transfer": 2, "loan": 1, "close": 2, "sort": 0, "logout": 0,
	}
	n, ok := want[name]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}
	if len(args) != n {
		return nil, fmt.Errorf("%s takes %d arguments", name, n)
	}

	switch name {
	case "login":
		return app.Login{Username: args[0], PIN: args[1]}, nil
	case "transfer":
		return app.Transfer{To: args[0], Amount: args[1]}, nil
	case "loan":
		return app.Loan{Amount: args[0]}, nil
	case "close":
		return app.Close{Username: args[0], PIN: args[1]}, nil
	case "sort":
		return app.Sort{}, nil
	default:
		return app.Logout{}, nil
	}
}

// terminal draws the app as text. The loop goroutine and the prompt both
// write to it.
type terminal struct {
	mu sync.Mutex
	w  io.Writer
}

func (t *terminal) Render(m view.Model) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = view.WriteText(t.w, m)
}

func (t *terminal) Notify(msg string) {
	t.Printf("! %s\n", msg)
}

// Countdown only speaks up near the end.
func (t *terminal) Countdown(remaining string) {
	switch remaining {
	case "01:00", "00:10":
		t.Printf("You will be logged out in %s\n", remaining)
	}
}

func (t *terminal) Printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, format, args...)
}
