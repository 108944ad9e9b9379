package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/theirongolddev/walletpal/internal/logging"
	"github.com/theirongolddev/walletpal/internal/tui"
	"github.com/theirongolddev/walletpal/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive budget dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// stderr belongs to the terminal UI; log to the configured file or nowhere.
	var out io.Writer
	if path := cfg.General.LogFile; path != "" {
		f, err := logging.OpenFile(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	log := logging.New(logging.Config{Level: level, Output: out})

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	s, err := loadSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.close()

	log.Info("starting tui",
		logging.FieldBackend, cfg.Storage.Backend,
		logging.FieldPath, s.store.Location(),
		logging.FieldCount, len(s.warnings))

	app := tui.NewApp(tui.Options{
		Ledger:     s.ledger,
		Store:      s.store,
		Config:     cfg,
		ConfigPath: configPath(),
		Warnings:   s.warnings,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Saves still running or queued at quit are settled here, before the
	// store is closed.
	if a, ok := final.(tui.App); ok && a.Unsaved() {
		if err := a.Flush(cmd.Context()); err != nil {
			return fmt.Errorf("saving: %w", err)
		}
	}
	return nil
}
