package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/walletpal/internal/config"
	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	if flagNoInput || !isatty.IsTerminal(os.Stdin.Fd()) {
		return errors.New("setup needs an interactive terminal; edit " + configPath() + " instead")
	}

	next := cfg
	if next.Budget.SavingsOverage == "" {
		next.Budget.SavingsOverage = string(ledger.SavingsConfirm)
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to WalletPal").
				Description("A few questions, then you're set.\nRe-run `walletpal setup` anytime."),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Data file").
				Description("Where income, expenses and savings are stored.").
				Value(&next.General.DataFile).
				Validate(func(s string) error {
					_, err := ledger.RequireLabel("data file", s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("Text file", "text"),
					huh.NewOption("SQLite database", "sqlite"),
				).
				Value(&next.Storage.Backend),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Saving past a goal").
				Options(
					huh.NewOption("Ask for confirmation", string(ledger.SavingsConfirm)),
					huh.NewOption("Reject the contribution", string(ledger.SavingsReject)),
				).
				Value(&next.Budget.SavingsOverage),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&next.Appearance.Theme),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled; nothing saved.")
			return nil
		}
		return err
	}

	if err := next.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	path := configPath()
	if err := config.SaveTo(path, next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	fmt.Printf("  Data will be stored at %s\n", next.StoragePath())
	fmt.Println("  Run `walletpal tui` to open the dashboard.")
	fmt.Println()

	return nil
}
