package cmd

import (
	"fmt"

	"github.com/theirongolddev/walletpal/internal/cli"
	"github.com/theirongolddev/walletpal/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	flagLimit string
	flagSpent string
)

var expenseCmd = &cobra.Command{
	Use:     "expense",
	Aliases: []string{"ex", "expenses"},
	Short:   "Manage expense limits and record spending",
	RunE:    runExpenseList,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	Args:  cobra.NoArgs,
	RunE:  runExpenseList,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <category> <limit>",
	Short: "Add an expense category with a spending limit",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpenseAdd,
}

var expenseEditCmd = &cobra.Command{
	Use:   "edit <category|#>",
	Short: "Edit an expense (limit changes are not checked against income)",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseEdit,
}

var expenseRmCmd = &cobra.Command{
	Use:     "rm <category|#>",
	Aliases: []string{"remove"},
	Short:   "Remove an expense",
	Args:    cobra.ExactArgs(1),
	RunE:    runExpenseRm,
}

var expenseSpendCmd = &cobra.Command{
	Use:   "spend <category|#> <amount>",
	Short: "Record spending against an expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpenseSpend,
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagNotes, "notes", "", "Notes")
	expenseEditCmd.Flags().StringVar(&flagLabel, "category", "", "New category name")
	expenseEditCmd.Flags().StringVar(&flagLimit, "limit", "", "New limit")
	expenseEditCmd.Flags().StringVar(&flagSpent, "spent", "", "Override the amount spent")
	expenseEditCmd.Flags().StringVar(&flagNotes, "notes", "", "New notes")
	expenseSpendCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Accept going over the limit without asking")

	expenseCmd.AddCommand(expenseListCmd, expenseAddCmd, expenseEditCmd, expenseRmCmd, expenseSpendCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.close()

	if err := requireIncome(s.ledger); err != nil {
		return err
	}
	printExpenses(s.ledger)
	return nil
}

func runExpenseAdd(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		if err := requireRoom(l, ledger.KindExpense); err != nil {
			return "", err
		}
		e, err := l.AddExpense(args[0], args[1], flagNotes)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added expense %q with a limit of %s", e.Category(), cli.FormatMoney(e.Limit())), nil
	}, printExpenses)
}

func runExpenseEdit(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		e, err := findExpense(l, args[0])
		if err != nil {
			return "", err
		}
		edit := ledger.ExpenseEdit{
			Category: flagOr(cmd, "category", flagLabel, e.Category()),
			Limit:    flagOr(cmd, "limit", flagLimit, cli.FormatAmount(e.Limit())),
			Spent:    flagOr(cmd, "spent", flagSpent, cli.FormatAmount(e.Spent())),
			Notes:    flagOr(cmd, "notes", flagNotes, e.Notes()),
		}
		if err := l.EditExpense(e.ID(), edit); err != nil {
			return "", err
		}
		return fmt.Sprintf("Updated expense %q", e.Category()), nil
	}, printExpenses)
}

func runExpenseRm(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		e, err := findExpense(l, args[0])
		if err != nil {
			return "", err
		}
		l.RemoveExpense(e)
		return fmt.Sprintf("Removed expense %q", e.Category()), nil
	}, printExpenses)
}

func runExpenseSpend(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		e, err := findExpense(l, args[0])
		if err != nil {
			return "", err
		}
		p, err := ledger.RecordSpend(e, args[1])
		if err != nil {
			return "", err
		}
		if p.NeedsConfirmation {
			ok, err := confirmOverage(ledger.KindExpense, p)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", fmt.Errorf("declined: %s", cli.OverageMessage(ledger.KindExpense, p))
			}
			ledger.ConfirmSpend(e, p)
		}
		return fmt.Sprintf("Spent %s on %q, %s remaining",
			cli.FormatMoney(p.Amount), e.Category(), cli.FormatMoney(e.Remaining())), nil
	}, printExpenses)
}

func printExpenses(l *ledger.Ledger) {
	expenses := l.Expenses()
	if len(expenses) == 0 {
		fmt.Println("\n  No expenses yet.")
		fmt.Println("  Add one with `walletpal expense add <category> <limit>`.")
		return
	}

	rows := make([][]string, 0, len(expenses)+2)
	for i, e := range expenses {
		remaining := cli.FormatMoney(e.Remaining())
		if e.Overspent() {
			remaining += " over"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d. %s", i+1, e.Category()),
			cli.FormatMoney(e.Limit()),
			cli.FormatMoney(e.Spent()),
			remaining,
			cli.Truncate(e.Notes(), 24),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total",
		cli.FormatMoney(l.TotalExpenseLimits()),
		cli.FormatMoney(l.TotalSpent()),
		cli.FormatMoney(l.TotalExpenseLimits().Sub(l.TotalSpent())),
		"",
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses  %s", cli.FormatCount(len(expenses), ledger.MaxExpenses)),
		Headers: []string{"Category", "Limit", "Spent", "Remaining", "Notes"},
		Rows:    rows,
	}))
	fmt.Printf("  %s\n", cli.RenderMuted("Unallocated income: "+cli.FormatMoney(l.Available())))
}
