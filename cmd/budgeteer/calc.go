package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/budget"
	"github.com/kbencic/budgeteer/internal/cli"
)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Show the derived budget values",
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
			fmt.Print(cli.RenderCalculated(state, calc, currencySymbol()))
			return nil
		},
	}
}
