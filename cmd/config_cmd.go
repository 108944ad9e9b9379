package cmd

import (
	"fmt"

	"github.com/theirongolddev/walletpal/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	path := configPath()

	fmt.Printf("  Config file: %s\n", path)
	if config.ExistsAt(path) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data file:  %s\n", cfg.General.DataFile)
	if cfg.General.LogFile != "" {
		fmt.Printf("    Log file:   %s\n", cfg.General.LogFile)
	} else {
		fmt.Println("    Log file:   not set")
	}
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend:    %s\n", cfg.Storage.Backend)
	fmt.Printf("    Location:   %s\n", cfg.StoragePath())
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Savings overage: %s\n", orDefault(cfg.Budget.SavingsOverage, "confirm"))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Environment overrides: %s, %s, %s, %s\n",
		config.EnvDataFile, config.EnvBackend, config.EnvTheme, config.EnvConfig)
	fmt.Println("  Run `walletpal setup` to reconfigure.")
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
