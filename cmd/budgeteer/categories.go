package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/cli"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the expense catalog with current slider values",
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

			fmt.Print(cli.RenderCategories(state.Expenses, currencySymbol()))
			return nil
		},
	}
}
