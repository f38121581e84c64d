package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbencic/budgeteer/internal/budget"
	"github.com/kbencic/budgeteer/internal/cli"
	"github.com/kbencic/budgeteer/internal/common"
	"github.com/kbencic/budgeteer/internal/model"
)

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update a budget input",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "income [amount]",
			Short: "Set monthly income",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return updateState(c, func(state model.BudgetState) (model.BudgetState, error) {
					income, err := parseValue(args[0])
					if err != nil {
						return state, err
					}
					return budget.UpdateIncome(state, income), nil
				})
			},
		},
		&cobra.Command{
			Use:   "split [percent]",
			Short: "Set investment/buffer split percentage",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return updateState(c, func(state model.BudgetState) (model.BudgetState, error) {
					split, err := parseValue(args[0])
					if err != nil {
						return state, err
					}
					return budget.UpdateInvestmentSplit(state, split), nil
				})
			},
		},
		&cobra.Command{
			Use:   "buffer-limit [amount]",
			Short: "Set the emergency buffer target (0 = unlimited)",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return updateState(c, func(state model.BudgetState) (model.BudgetState, error) {
					limit, err := parseValue(args[0])
					if err != nil {
						return state, err
					}
					return budget.UpdateBufferLimit(state, limit), nil
				})
			},
		},
		&cobra.Command{
			Use:   "expense [category] [amount]",
			Short: "Set one expense category (unknown ids become custom categories)",
			Args:  cobra.ExactArgs(2),
			RunE: func(c *cobra.Command, args []string) error {
				return updateState(c, func(state model.BudgetState) (model.BudgetState, error) {
					value, err := parseValue(args[1])
					if err != nil {
						return state, err
					}
					return budget.UpdateExpense(state, args[0], value), nil
				})
			},
		},
		&cobra.Command{
			Use:   "allocation [etf|btc|eth] [percent]",
			Short: "Set one allocation percentage (auto-normalized to 100)",
			Args:  cobra.ExactArgs(2),
			RunE: func(c *cobra.Command, args []string) error {
				asset := args[0]
				if asset != "etf" && asset != "btc" && asset != "eth" {
					return common.NewUserError(fmt.Sprintf("%q is not an asset", asset), common.ErrUnknownAsset)
				}
				return updateState(c, func(state model.BudgetState) (model.BudgetState, error) {
					value, err := parseValue(args[1])
					if err != nil {
						return state, err
					}
					return budget.UpdateAllocation(state, asset, value), nil
				})
			},
		},
	)

	return cmd
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// updateState loads, transforms, saves and prints the budget state.
func updateState(cmd *cobra.Command, fn func(model.BudgetState) (model.BudgetState, error)) error {
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

	state, err = fn(state)
	if err != nil {
		return err
	}
	if err := store.SaveState(ctx, state); err != nil {
		return err
	}

	calc := budget.Calculate(state)
	fmt.Print(cli.RenderCalculated(state, calc, currencySymbol()))
	return nil
}
