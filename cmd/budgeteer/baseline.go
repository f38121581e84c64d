package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/budget"
	"github.com/kbencic/budgeteer/internal/cli"
	"github.com/kbencic/budgeteer/internal/common"
)

func baselineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "baseline",
		Short: "Apply the last imported analysis as the budget baseline",
		Long: `Set every expense slider to the monthly average from the last
'budgeteer analyze' run. Presets generated afterwards use your actual
spending as the starting point.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			imported, err := store.LoadImportedData(ctx)
			if err != nil {
				return err
			}
			if imported == nil {
				return common.NewUserError("run 'budgeteer analyze' first", common.ErrNoImportedData)
			}

			state, err := store.LoadState(ctx)
			if err != nil {
				return err
			}

			state = budget.ApplyImportedBaseline(state, *imported)
			if err := store.SaveState(ctx, state); err != nil {
				return err
			}

			fmt.Printf("Applied baseline from %s (%s to %s).\n",
				imported.FileName, imported.DateRange.Start, imported.DateRange.End)
			calc := budget.Calculate(state)
			fmt.Print(cli.RenderCalculated(state, calc, currencySymbol()))
			return nil
		},
	}
}
