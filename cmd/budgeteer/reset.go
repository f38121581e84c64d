package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/budget"
	"github.com/kbencic/budgeteer/internal/cli"
)

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the budget to catalog defaults",
		Long:  `Restore default expenses and income and clear any imported baseline.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			state, err := store.LoadState(ctx)
			if err != nil {
				return err
			}

			state = budget.ResetToDefaults(state)
			if err := store.SaveState(ctx, state); err != nil {
				return err
			}

			fmt.Println("Budget reset to defaults.")
			calc := budget.Calculate(state)
			fmt.Print(cli.RenderCalculated(state, calc, currencySymbol()))
			return nil
		},
	}
}
