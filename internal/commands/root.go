package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/bank"
	"github.com/bankist-dev/bankist/internal/buildinfo"
	"github.com/bankist-dev/bankist/internal/config"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "bankist",
		Short:   "In-memory demo bank",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to bankist.yaml (built-in defaults when empty)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCommand(),
		newShellCommand(opts),
		newSummaryCommand(opts),
		newStatementCommand(opts),
		newReportCommand(opts),
		newAccountsCommand(opts),
	)

	return rootCmd
}

// env is the bank a command runs against. Every invocation starts from the
// seed; nothing is persisted.
type env struct {
	cfg   *config.Config
	log   *logrus.Logger
	store *accounts.Store
	bank  *bank.Service
}

func (o *options) load(cmd *cobra.Command) (*env, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
	}

	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	log, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, err
	}

	seed := accounts.DefaultSeed()
	if path := cfg.Accounts.SeedFile; path != "" {
		if !filepath.IsAbs(path) && o.configPath != "" {
			path = filepath.Join(filepath.Dir(o.configPath), path)
		}
		seed, err = accounts.LoadSeed(path)
		if err != nil {
			return nil, err
		}
	}

	store := accounts.NewStore(seed)
	log.WithField("accounts", store.Len()).Debug("store ready")

	return &env{
		cfg:   cfg,
		log:   log,
		store: store,
		bank:  bank.NewService(store, cfg.Loan, log),
	}, nil
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetLevel(lvl)
	return log, nil
}
