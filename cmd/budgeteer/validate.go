package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/cli"
	"github.com/kbencic/budgeteer/internal/common"
	"github.com/kbencic/budgeteer/internal/revolut"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file.csv]",
		Short: "Check that a CSV export has the expected structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			result := revolut.Validate(string(content))
			fmt.Print(cli.RenderValidation(result))
			if !result.IsValid {
				return common.NewUserError("CSV validation failed", common.ErrInvalidCSV)
			}
			return nil
		},
	}
}
