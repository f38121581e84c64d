// Package budget holds the deterministic budget math: derived values, state
// operations and growth projections. Every function here is a pure transform
// of its arguments.
package budget

import (
	"math"

	"github.com/kbencic/budgeteer/internal/model"
)

// Calculate derives all financial metrics from a budget state.
func Calculate(state model.BudgetState) model.CalculatedValues {
	totalExpenses := 0.0
	for _, v := range state.Expenses {
		totalExpenses += v
	}
	surplus := state.Income - totalExpenses

	splitPercent := clamp(state.InvestmentSplit, 0, 100)
	totalInvestment := 0.0
	if surplus > 0 {
		totalInvestment = math.Floor(surplus * splitPercent / 100)
	}
	buffer := math.Max(0, surplus-totalInvestment)

	etfPercent, btcPercent, _ := normalizeAllocations(state.Allocations, totalInvestment)

	var etfAmount, btcAmount, ethAmount float64
	if totalInvestment > 0 {
		etfAmount = math.Floor(totalInvestment * etfPercent / 100)
		btcAmount = math.Floor(totalInvestment * btcPercent / 100)
		// ETH takes the remainder so the three always sum to the
		// investment amount exactly.
		ethAmount = totalInvestment - etfAmount - btcAmount
	}

	savingsRate := 0.0
	if state.Income > 0 {
		savingsRate = totalInvestment / state.Income * 100
	}

	essentialTotal, discretionaryTotal := groupTotals(state.Expenses)

	return model.CalculatedValues{
		TotalExpenses:         totalExpenses,
		Surplus:               surplus,
		TotalInvestmentAmount: totalInvestment,
		Buffer:                buffer,
		SavingsRate:           savingsRate,
		ETFAmount:             etfAmount,
		BTCAmount:             btcAmount,
		ETHAmount:             ethAmount,
		EssentialTotal:        essentialTotal,
		DiscretionaryTotal:    discretionaryTotal,
	}
}

// normalizeAllocations clamps each percentage to [0,100], then rescales the
// triple to sum exactly 100. ETH absorbs all rounding error. A zero sum
// becomes the default 33/33/34 split when there is anything to invest.
func normalizeAllocations(a model.Allocations, totalInvestment float64) (etf, btc, eth float64) {
	etf = clamp(a.ETF, 0, 100)
	btc = clamp(a.BTC, 0, 100)
	eth = clamp(a.ETH, 0, 100)

	sum := etf + btc + eth
	switch {
	case sum != 100 && sum > 0:
		etf = math.Round(etf / sum * 100)
		btc = math.Round(btc / sum * 100)
		eth = 100 - etf - btc
	case sum == 0 && totalInvestment > 0:
		etf, btc, eth = 33, 33, 34
	}
	return etf, btc, eth
}

// groupTotals sums catalog expenses per group. Custom category ids belong to
// neither group on purpose; they still count toward the grand total.
func groupTotals(expenses map[string]float64) (essential, discretionary float64) {
	for id, value := range expenses {
		category, ok := model.CatalogCategory(id)
		if !ok {
			continue
		}
		switch category.Group {
		case model.GroupEssential:
			essential += value
		case model.GroupDiscretionary:
			discretionary += value
		}
	}
	return essential, discretionary
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
