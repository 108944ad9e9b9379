package cmd

import (
	"fmt"

	"github.com/theirongolddev/walletpal/internal/cli"
	"github.com/theirongolddev/walletpal/internal/model"
	"github.com/theirongolddev/walletpal/internal/summary"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Budget summary with a spending breakdown",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.close()

	if !s.ledger.HasAnyIncome() {
		fmt.Println("\n  No income recorded yet.")
		fmt.Println("  Add one with `walletpal income add <source> <amount>`, then come back!")
		return nil
	}

	stats := summary.Compute(s.ledger)

	fmt.Println()
	fmt.Println(cli.RenderTitle("WALLETPAL SUMMARY"))
	fmt.Println()
	fmt.Print(cli.RenderTable(summaryTable(stats)))

	fmt.Println()
	fmt.Printf("  Net Balance       %s\n", cli.RenderBalance(cli.FormatMoney(stats.NetBalance), stats.Overspent()))
	fmt.Printf("  Utilization       %s\n", cli.RenderProgressBar(stats.UtilizationRatio(), 30))
	fmt.Printf("  Savings Progress  %s\n", cli.RenderProgressBar(stats.ProgressRatio(), 30))

	segments := barSegments(stats)
	if bar := cli.RenderStackedBar(segments, 50); bar != "" {
		fmt.Println()
		fmt.Printf("  %s\n", bar)
		fmt.Print(cli.RenderLegend(segments))
	}

	return nil
}

func summaryTable(stats model.Summary) cli.Table {
	return cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Income", cli.FormatMoney(stats.TotalIncome)},
			{"Total Expenses", cli.FormatMoney(stats.TotalExpenseLimits)},
			{"Actual Spent", cli.FormatMoney(stats.TotalSpent)},
			{"Total Saved", cli.FormatMoney(stats.TotalSaved)},
			{"---"},
			{"Net Balance", cli.FormatMoney(stats.NetBalance)},
			{"Utilization", cli.FormatPercent(stats.BudgetUtilization)},
			{"Remaining", cli.FormatMoney(stats.RemainingBudget)},
			{"Savings Progress", cli.FormatPercent(stats.SavingsProgress)},
		},
	}
}

func barSegments(stats model.Summary) []cli.BarSegment {
	segments := make([]cli.BarSegment, 0, len(stats.Series))
	for _, seg := range stats.Series {
		segments = append(segments, cli.BarSegment{Label: seg.Label, Value: seg.Value.InexactFloat64()})
	}
	return segments
}
