package budget

import (
	"math"

	"github.com/kbencic/budgeteer/internal/model"
	"github.com/kbencic/budgeteer/internal/preset"
)

// Income bounds accepted by UpdateIncome and by persisted-state
// sanitization.
const (
	MaxIncome = 100000
)

// PresetName identifies one of the three built-in budget presets.
type PresetName string

const (
	// PresetCurrent mirrors the baseline spending as-is.
	PresetCurrent PresetName = "current"
	// PresetModerate applies the moderate-savings strategy.
	PresetModerate PresetName = "moderate"
	// PresetAggressive applies the aggressive-savings strategy.
	PresetAggressive PresetName = "aggressive"
)

// Hardcoded preset expense tables, used when no imported baseline is active.
var presetTables = map[PresetName]map[string]float64{
	PresetCurrent: {
		"rent": 350, "food-delivery": 75, "fast-food": 31, "groceries": 300,
		"transport": 132, "subscriptions": 165, "shopping": 250, "gaming": 85,
		"health": 50, "books": 30, "utilities": 150, "entertainment": 100, "cash": 50,
	},
	PresetModerate: {
		"rent": 350, "food-delivery": 30, "fast-food": 15, "groceries": 350,
		"transport": 50, "subscriptions": 100, "shopping": 150, "gaming": 50,
		"health": 50, "books": 20, "utilities": 150, "entertainment": 80, "cash": 50,
	},
	PresetAggressive: {
		"rent": 350, "food-delivery": 0, "fast-food": 0, "groceries": 400,
		"transport": 50, "subscriptions": 50, "shopping": 50, "gaming": 20,
		"health": 50, "books": 10, "utilities": 120, "entertainment": 50, "cash": 30,
	},
}

// DefaultState returns the initial budget state with catalog default
// expenses.
func DefaultState() model.BudgetState {
	expenses := make(map[string]float64, len(model.ExpenseCategories))
	for _, cat := range model.ExpenseCategories {
		expenses[cat.ID] = cat.Default
	}
	return model.BudgetState{
		Income:          2000,
		InvestmentSplit: 60,
		Expenses:        expenses,
		Allocations:     model.Allocations{ETF: 60, BTC: 25, ETH: 15},
		BufferLimit:     5000,
	}
}

// UpdateIncome returns a state with income clamped to [0, MaxIncome].
func UpdateIncome(state model.BudgetState, income float64) model.BudgetState {
	state.Income = clamp(income, 0, MaxIncome)
	return state
}

// UpdateInvestmentSplit returns a state with the split clamped to [0,100].
func UpdateInvestmentSplit(state model.BudgetState, split float64) model.BudgetState {
	state.InvestmentSplit = clamp(split, 0, 100)
	return state
}

// UpdateExpense returns a state with one expense category set. Unknown
// category ids are accepted as custom categories.
func UpdateExpense(state model.BudgetState, categoryID string, value float64) model.BudgetState {
	state.Expenses = cloneExpenses(state.Expenses)
	state.Expenses[categoryID] = value
	return state
}

// UpdateBufferLimit returns a state with the buffer limit floored at 0.
// Zero means no limit.
func UpdateBufferLimit(state model.BudgetState, limit float64) model.BudgetState {
	state.BufferLimit = math.Max(0, limit)
	return state
}

// UpdateAllocation returns a state with one of the etf/btc/eth percentages
// set, then auto-normalizes the triple to sum 100. ETH absorbs the rounding
// remainder.
func UpdateAllocation(state model.BudgetState, asset string, value float64) model.BudgetState {
	a := state.Allocations
	switch asset {
	case "etf":
		a.ETF = value
	case "btc":
		a.BTC = value
	case "eth":
		a.ETH = value
	default:
		return state
	}

	total := a.ETF + a.BTC + a.ETH
	if total > 0 && total != 100 {
		scale := 100 / total
		a.ETF = math.Round(a.ETF * scale)
		a.BTC = math.Round(a.BTC * scale)
		a.ETH = 100 - a.ETF - a.BTC
	}

	state.Allocations = a
	return state
}

// LoadPreset returns a state with the named preset's expenses applied. When
// an imported baseline is active the preset is generated from the imported
// monthly averages; otherwise the hardcoded tables are used.
func LoadPreset(state model.BudgetState, name PresetName) model.BudgetState {
	var newExpenses map[string]float64

	if state.IsUsingImportedBaseline && state.ImportedData != nil {
		baseline := BaselineFromImport(state.ImportedData)
		switch name {
		case PresetCurrent:
			newExpenses = baseline
		case PresetModerate:
			newExpenses = preset.Moderate(baseline)
		case PresetAggressive:
			newExpenses = preset.Aggressive(baseline)
		default:
			return state
		}
	} else {
		table, ok := presetTables[name]
		if !ok {
			return state
		}
		newExpenses = make(map[string]float64, len(model.ExpenseCategories))
		for _, cat := range model.ExpenseCategories {
			if value, found := table[cat.ID]; found {
				newExpenses[cat.ID] = value
			} else {
				newExpenses[cat.ID] = cat.Default
			}
		}
	}

	state.Expenses = newExpenses
	return state
}

// BaselineFromImport builds a per-category baseline from imported monthly
// averages, falling back to catalog defaults for categories the import has
// no data for.
func BaselineFromImport(imported *model.ImportedSpendingData) map[string]float64 {
	baseline := make(map[string]float64, len(model.ExpenseCategories))
	for _, cat := range model.ExpenseCategories {
		if data, ok := imported.CategoryBreakdown[cat.ID]; ok {
			baseline[cat.ID] = math.Round(data.MonthlyAverage)
		} else {
			baseline[cat.ID] = cat.Default
		}
	}
	return baseline
}

// ApplyImportedBaseline returns a state whose expenses come from the
// imported monthly averages; categories absent from the import drop to 0.
func ApplyImportedBaseline(state model.BudgetState, imported model.ImportedSpendingData) model.BudgetState {
	newExpenses := make(map[string]float64, len(model.ExpenseCategories))
	for _, cat := range model.ExpenseCategories {
		if data, ok := imported.CategoryBreakdown[cat.ID]; ok && data.Count > 0 {
			newExpenses[cat.ID] = math.Round(data.MonthlyAverage)
		} else {
			newExpenses[cat.ID] = 0
		}
	}

	state.Expenses = newExpenses
	state.ImportedData = &imported
	state.IsUsingImportedBaseline = true
	return state
}

// ResetToDefaults returns a state with catalog defaults and any imported
// baseline cleared.
func ResetToDefaults(state model.BudgetState) model.BudgetState {
	expenses := make(map[string]float64, len(model.ExpenseCategories))
	for _, cat := range model.ExpenseCategories {
		expenses[cat.ID] = cat.Default
	}
	state.Expenses = expenses
	state.ImportedData = nil
	state.IsUsingImportedBaseline = false
	state.Income = 2000
	return state
}

func cloneExpenses(expenses map[string]float64) map[string]float64 {
	clone := make(map[string]float64, len(expenses))
	for k, v := range expenses {
		clone[k] = v
	}
	return clone
}
