package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/budget"
	"github.com/kbencic/budgeteer/internal/cli"
)

func projectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Show 12-month and 10-year growth projections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			state, err := store.LoadState(cmd.Context())
			if err != nil {
				return err
			}

			calc := budget.Calculate(state)
			currency := currencySymbol()
			fmt.Print(cli.RenderYearProjection(budget.ProjectYear(state, calc), currency))
			fmt.Println()
			fmt.Print(cli.RenderDecadeProjection(budget.ProjectDecade(calc), currency))
			return nil
		},
	}
}
