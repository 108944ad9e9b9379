// Package cmd implements the walletpal CLI commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/walletpal/internal/config"
	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/logging"
	"github.com/theirongolddev/walletpal/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagDataFile string
	flagBackend  string
	flagConfig   string
	flagQuiet    bool
	flagVerbose  bool
	flagNoInput  bool
)

// cfg is the effective configuration: file, then env, then flags.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:               "walletpal",
	Short:             "Personal budgeting in the terminal",
	Long:              "Track income, expense limits, and savings goals, and see where your money stands.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data-file", "f", "", "Data file path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: text or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoInput, "no-input", false, "Never prompt; decline anything needing confirmation")
}

// setup resolves configuration and logging before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	// A missing .env is fine.
	_ = godotenv.Load()

	var err error
	if flagConfig != "" {
		cfg, err = config.LoadFrom(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if flagDataFile != "" {
		cfg.General.DataFile = flagDataFile
		cfg.Storage.SQLitePath = ""
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := slog.LevelWarn
	switch {
	case flagVerbose:
		level = slog.LevelDebug
	case flagQuiet:
		level = slog.LevelError
	}
	logging.New(logging.Config{Level: level, Output: os.Stderr})
	return nil
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.ConfigPath()
}

// session is an open store plus the ledger loaded from it.
type session struct {
	store    store.Store
	ledger   *ledger.Ledger
	warnings []ledger.Warning
}

// openSession is the shared data loading path used by all commands.
// Skipped records are reported on stderr.
func openSession(ctx context.Context) (*session, error) {
	s, err := loadSession(ctx)
	if err != nil {
		return nil, err
	}
	if !flagQuiet && len(s.warnings) > 0 {
		fmt.Fprintf(os.Stderr, "  %d record(s) in %s were skipped:\n", len(s.warnings), s.store.Location())
		for _, w := range s.warnings {
			fmt.Fprintf(os.Stderr, "    %s\n", w)
		}
	}
	return s, nil
}

// loadSession opens the configured store and builds the ledger, keeping
// load warnings for the caller to present.
func loadSession(ctx context.Context) (*session, error) {
	st, err := store.Open(cfg.Storage.Backend, cfg.StoragePath())
	if err != nil {
		return nil, err
	}

	report, err := st.Load(ctx)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("loading %s: %w", st.Location(), err)
	}

	policy, _ := ledger.ParseSavingsPolicy(cfg.Budget.SavingsOverage)
	l, capWarnings := ledger.FromSnapshot(report.Snapshot, ledger.WithSavingsPolicy(policy))

	return &session{
		store:    st,
		ledger:   l,
		warnings: append(report.Warnings, capWarnings...),
	}, nil
}

// save persists the ledger and closes the store.
func (s *session) save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.ledger.Snapshot()); err != nil {
		return fmt.Errorf("saving %s: %w", s.store.Location(), err)
	}
	return nil
}

func (s *session) close() {
	_ = s.store.Close()
}
