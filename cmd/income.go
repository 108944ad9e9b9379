package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/walletpal/internal/cli"
	"github.com/theirongolddev/walletpal/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	flagNotes  string
	flagLabel  string
	flagAmount string
)

var incomeCmd = &cobra.Command{
	Use:     "income",
	Aliases: []string{"in"},
	Short:   "Manage income sources",
	RunE:    runIncomeList,
}

var incomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List income sources",
	Args:  cobra.NoArgs,
	RunE:  runIncomeList,
}

var incomeAddCmd = &cobra.Command{
	Use:   "add <source> <amount>",
	Short: "Add an income source",
	Args:  cobra.ExactArgs(2),
	RunE:  runIncomeAdd,
}

var incomeEditCmd = &cobra.Command{
	Use:   "edit <source|#>",
	Short: "Edit an income source",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeEdit,
}

var incomeRmCmd = &cobra.Command{
	Use:     "rm <source|#>",
	Aliases: []string{"remove"},
	Short:   "Remove an income source",
	Args:    cobra.ExactArgs(1),
	RunE:    runIncomeRm,
}

func init() {
	incomeAddCmd.Flags().StringVar(&flagNotes, "notes", "", "Notes")
	incomeEditCmd.Flags().StringVar(&flagLabel, "source", "", "New source name")
	incomeEditCmd.Flags().StringVar(&flagAmount, "amount", "", "New amount")
	incomeEditCmd.Flags().StringVar(&flagNotes, "notes", "", "New notes")

	incomeCmd.AddCommand(incomeListCmd, incomeAddCmd, incomeEditCmd, incomeRmCmd)
	rootCmd.AddCommand(incomeCmd)
}

func runIncomeList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.close()

	printIncomes(s.ledger)
	return nil
}

func runIncomeAdd(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		in, err := l.AddIncome(args[0], args[1], flagNotes)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added income %q: %s", in.Source(), cli.FormatMoney(in.Amount())), nil
	}, printIncomes)
}

func runIncomeEdit(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		in, err := findIncome(l, args[0])
		if err != nil {
			return "", err
		}
		edit := ledger.IncomeEdit{
			Source: flagOr(cmd, "source", flagLabel, in.Source()),
			Amount: flagOr(cmd, "amount", flagAmount, cli.FormatAmount(in.Amount())),
			Notes:  flagOr(cmd, "notes", flagNotes, in.Notes()),
		}
		if err := l.EditIncome(in.ID(), edit); err != nil {
			return "", err
		}
		return fmt.Sprintf("Updated income %q", in.Source()), nil
	}, printIncomes)
}

func runIncomeRm(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		in, err := findIncome(l, args[0])
		if err != nil {
			return "", err
		}
		l.RemoveIncome(in)
		return fmt.Sprintf("Removed income %q", in.Source()), nil
	}, printIncomes)
}

func printIncomes(l *ledger.Ledger) {
	incomes := l.Incomes()
	if len(incomes) == 0 {
		fmt.Println("\n  No income sources yet.")
		fmt.Println("  Add one with `walletpal income add <source> <amount>`.")
		return
	}

	rows := make([][]string, 0, len(incomes)+2)
	for i, in := range incomes {
		rows = append(rows, []string{fmt.Sprintf("%d. %s", i+1, in.Source()), cli.FormatMoney(in.Amount()), cli.Truncate(in.Notes(), 30)})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatMoney(l.TotalIncome()), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Income  %s", cli.FormatCount(len(incomes), ledger.MaxIncomes)),
		Headers: []string{"Source", "Amount", "Notes"},
		Rows:    rows,
	}))
}

// mutate loads the ledger, applies fn, saves, and prints the result.
func mutate(ctx context.Context, fn func(*ledger.Ledger) (string, error), show func(*ledger.Ledger)) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	msg, err := fn(s.ledger)
	if err != nil {
		return err
	}
	if err := s.save(ctx); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("\n  %s\n", msg)
		if show != nil {
			show(s.ledger)
		}
	}
	return nil
}

// flagOr returns the flag's value when it was set, otherwise current.
func flagOr(cmd *cobra.Command, name, value, current string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return current
}

