package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/cli"
	"github.com/kbencic/budgeteer/internal/common"
	"github.com/kbencic/budgeteer/internal/model"
)

func mappingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "Manage custom merchant-to-category mappings",
		Long: `Custom mappings force a category for an exact merchant description,
overriding automatic classification with full confidence. Use them to resolve
merchants the analyzer leaves uncategorized.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all custom mappings",
			RunE: func(c *cobra.Command, _ []string) error {
				store, err := openStore()
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()

				mappings, err := store.ListMappings(c.Context())
				if err != nil {
					return err
				}
				fmt.Print(cli.RenderMappings(mappings))
				return nil
			},
		},
		&cobra.Command{
			Use:   "add [description] [category]",
			Short: "Map a merchant description to a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(c *cobra.Command, args []string) error {
				description, category := args[0], args[1]
				if _, ok := model.CatalogCategory(category); !ok && category != model.CategoryUndecided {
					return common.NewUserError(
						fmt.Sprintf("%q is not a catalog category", category),
						common.ErrUnknownCategory)
				}

				store, err := openStore()
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()

				if err := store.SaveMapping(c.Context(), description, category); err != nil {
					return err
				}
				fmt.Printf("Mapped %q → %s. Re-run 'budgeteer analyze' to apply.\n", description, category)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove [description]",
			Short: "Remove a custom mapping",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				store, err := openStore()
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()

				if err := store.DeleteMapping(c.Context(), args[0]); err != nil {
					return err
				}
				fmt.Printf("Removed mapping for %q.\n", args[0])
				return nil
			},
		},
	)

	return cmd
}
