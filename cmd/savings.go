package cmd

import (
	"fmt"

	"github.com/theirongolddev/walletpal/internal/cli"
	"github.com/theirongolddev/walletpal/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	flagGoal  string
	flagSaved string
)

var savingsCmd = &cobra.Command{
	Use:     "savings",
	Aliases: []string{"sv"},
	Short:   "Manage savings goals and record deposits",
	RunE:    runSavingsList,
}

var savingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List savings goals",
	Args:  cobra.NoArgs,
	RunE:  runSavingsList,
}

var savingsAddCmd = &cobra.Command{
	Use:   "add <category> <goal>",
	Short: "Add a savings goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runSavingsAdd,
}

var savingsEditCmd = &cobra.Command{
	Use:   "edit <category|#>",
	Short: "Edit a savings goal (goal changes are not checked against income)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavingsEdit,
}

var savingsRmCmd = &cobra.Command{
	Use:     "rm <category|#>",
	Aliases: []string{"remove"},
	Short:   "Remove a savings goal",
	Args:    cobra.ExactArgs(1),
	RunE:    runSavingsRm,
}

var savingsSaveCmd = &cobra.Command{
	Use:   "save <category|#> <amount>",
	Short: "Record money saved toward a goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runSavingsSave,
}

func init() {
	savingsAddCmd.Flags().StringVar(&flagNotes, "notes", "", "Notes")
	savingsEditCmd.Flags().StringVar(&flagLabel, "category", "", "New category name")
	savingsEditCmd.Flags().StringVar(&flagGoal, "goal", "", "New goal")
	savingsEditCmd.Flags().StringVar(&flagSaved, "saved", "", "Override the amount saved")
	savingsEditCmd.Flags().StringVar(&flagNotes, "notes", "", "New notes")
	savingsSaveCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Accept going past the goal without asking")

	savingsCmd.AddCommand(savingsListCmd, savingsAddCmd, savingsEditCmd, savingsRmCmd, savingsSaveCmd)
	rootCmd.AddCommand(savingsCmd)
}

func runSavingsList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.close()

	if err := requireIncome(s.ledger); err != nil {
		return err
	}
	printSavings(s.ledger)
	return nil
}

func runSavingsAdd(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		if err := requireRoom(l, ledger.KindSavings); err != nil {
			return "", err
		}
		sv, err := l.AddSavings(args[0], args[1], flagNotes)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added savings goal %q of %s", sv.Category(), cli.FormatMoney(sv.Goal())), nil
	}, printSavings)
}

func runSavingsEdit(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		sv, err := findSavings(l, args[0])
		if err != nil {
			return "", err
		}
		edit := ledger.SavingsEdit{
			Category: flagOr(cmd, "category", flagLabel, sv.Category()),
			Goal:     flagOr(cmd, "goal", flagGoal, cli.FormatAmount(sv.Goal())),
			Saved:    flagOr(cmd, "saved", flagSaved, cli.FormatAmount(sv.Saved())),
			Notes:    flagOr(cmd, "notes", flagNotes, sv.Notes()),
		}
		if err := l.EditSavings(sv.ID(), edit); err != nil {
			return "", err
		}
		return fmt.Sprintf("Updated savings goal %q", sv.Category()), nil
	}, printSavings)
}

func runSavingsRm(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		sv, err := findSavings(l, args[0])
		if err != nil {
			return "", err
		}
		l.RemoveSavings(sv)
		return fmt.Sprintf("Removed savings goal %q", sv.Category()), nil
	}, printSavings)
}

func runSavingsSave(cmd *cobra.Command, args []string) error {
	return mutate(cmd.Context(), func(l *ledger.Ledger) (string, error) {
		sv, err := findSavings(l, args[0])
		if err != nil {
			return "", err
		}
		p, err := l.RecordSave(sv, args[1])
		if err != nil {
			return "", err
		}
		if p.NeedsConfirmation {
			ok, err := confirmOverage(ledger.KindSavings, p)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", fmt.Errorf("declined: %s", cli.OverageMessage(ledger.KindSavings, p))
			}
			ledger.ConfirmSave(sv, p)
		}
		return fmt.Sprintf("Saved %s toward %q, %s to go",
			cli.FormatMoney(p.Amount), sv.Category(), cli.FormatMoney(sv.MoreToGo())), nil
	}, printSavings)
}

func printSavings(l *ledger.Ledger) {
	goals := l.Savings()
	if len(goals) == 0 {
		fmt.Println("\n  No savings goals yet.")
		fmt.Println("  Add one with `walletpal savings add <category> <goal>`.")
		return
	}

	rows := make([][]string, 0, len(goals)+2)
	for i, sv := range goals {
		toGo := cli.FormatMoney(sv.MoreToGo())
		if sv.Reached() {
			toGo += " done"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d. %s", i+1, sv.Category()),
			cli.FormatMoney(sv.Goal()),
			cli.FormatMoney(sv.Saved()),
			toGo,
			cli.Truncate(sv.Notes(), 24),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total",
		cli.FormatMoney(l.TotalSavingsGoals()),
		cli.FormatMoney(l.TotalSaved()),
		cli.FormatMoney(l.TotalSavingsGoals().Sub(l.TotalSaved())),
		"",
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Savings  %s", cli.FormatCount(len(goals), ledger.MaxSavings)),
		Headers: []string{"Category", "Goal", "Saved", "More to go", "Notes"},
		Rows:    rows,
	}))
	fmt.Printf("  %s\n", cli.RenderMuted("Unallocated income: "+cli.FormatMoney(l.Available())))
}
