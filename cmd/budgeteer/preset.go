package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/budget"
	"github.com/kbencic/budgeteer/internal/cli"
	"github.com/kbencic/budgeteer/internal/common"
	"github.com/kbencic/budgeteer/internal/preset"
)

func presetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset [current|moderate|aggressive]",
		Short: "Apply one of the built-in budget presets",
		Long: `Replace the expense sliders with a preset budget. When an imported
baseline is active the moderate and aggressive presets are generated from
your actual spending; otherwise hardcoded defaults are used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := budget.PresetName(args[0])
			switch name {
			case budget.PresetCurrent, budget.PresetModerate, budget.PresetAggressive:
			default:
				return common.NewUserError(fmt.Sprintf("%q is not a preset", args[0]), common.ErrUnknownPreset)
			}

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

			state = budget.LoadPreset(state, name)
			if err := store.SaveState(ctx, state); err != nil {
				return err
			}

			if state.IsUsingImportedBaseline && state.ImportedData != nil {
				baseline := budget.BaselineFromImport(state.ImportedData)
				savings := preset.Savings(baseline, preset.Moderate(baseline), preset.Aggressive(baseline))
				currency := currencySymbol()
				fmt.Printf("Baseline spend %s%.0f/mo — moderate saves %s%.0f, aggressive saves %s%.0f\n",
					currency, savings.BaselineTotal,
					currency, savings.ModerateSavings,
					currency, savings.AggressiveSavings)
			}

			calc := budget.Calculate(state)
			fmt.Print(cli.RenderCalculated(state, calc, currencySymbol()))
			return nil
		},
	}
}
