package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbencic/budgeteer/internal/model"
)

func TestCalculate_Defaults(t *testing.T) {
	calc := Calculate(DefaultState())

	assert.InDelta(t, 1768, calc.TotalExpenses, 1e-9)
	assert.InDelta(t, 232, calc.Surplus, 1e-9)
	assert.InDelta(t, 139, calc.TotalInvestmentAmount, 1e-9, "floor of 232 * 60%")
	assert.InDelta(t, 93, calc.Buffer, 1e-9)
	assert.InDelta(t, 6.95, calc.SavingsRate, 1e-9)

	assert.InDelta(t, 83, calc.ETFAmount, 1e-9)
	assert.InDelta(t, 34, calc.BTCAmount, 1e-9)
	assert.InDelta(t, 22, calc.ETHAmount, 1e-9, "remainder after floors")
	assert.InDelta(t, calc.TotalInvestmentAmount, calc.ETFAmount+calc.BTCAmount+calc.ETHAmount, 1e-9)

	assert.InDelta(t, 982, calc.EssentialTotal, 1e-9)
	assert.InDelta(t, 786, calc.DiscretionaryTotal, 1e-9)
	assert.InDelta(t, calc.TotalExpenses, calc.EssentialTotal+calc.DiscretionaryTotal, 1e-9)
}

func TestCalculate_NegativeSurplus(t *testing.T) {
	state := DefaultState()
	state.Income = 1000

	calc := Calculate(state)
	assert.InDelta(t, -768, calc.Surplus, 1e-9)
	assert.InDelta(t, 0, calc.TotalInvestmentAmount, 1e-9)
	assert.InDelta(t, 0, calc.Buffer, 1e-9, "buffer never goes negative")
	assert.InDelta(t, 0, calc.ETFAmount+calc.BTCAmount+calc.ETHAmount, 1e-9)
}

func TestCalculate_SplitBoundaries(t *testing.T) {
	state := DefaultState()

	state.InvestmentSplit = 0
	calc := Calculate(state)
	assert.InDelta(t, 0, calc.TotalInvestmentAmount, 1e-9)
	assert.InDelta(t, 232, calc.Buffer, 1e-9)

	state.InvestmentSplit = 100
	calc = Calculate(state)
	assert.InDelta(t, 232, calc.TotalInvestmentAmount, 1e-9)
	assert.InDelta(t, 0, calc.Buffer, 1e-9)

	state.InvestmentSplit = 250
	calc = Calculate(state)
	assert.InDelta(t, 232, calc.TotalInvestmentAmount, 1e-9, "split clamps to 100")
}

func TestCalculate_ZeroIncome(t *testing.T) {
	state := DefaultState()
	state.Income = 0

	calc := Calculate(state)
	assert.InDelta(t, 0, calc.SavingsRate, 1e-9, "no division by zero")
}

func TestCalculate_AllocationNormalization(t *testing.T) {
	state := DefaultState()

	t.Run("unnormalized sum rescales", func(t *testing.T) {
		state.Allocations = model.Allocations{ETF: 50, BTC: 50, ETH: 50}
		calc := Calculate(state)
		// Rescaled to 33/33/34; eth absorbs the remainder.
		assert.InDelta(t, calc.TotalInvestmentAmount,
			calc.ETFAmount+calc.BTCAmount+calc.ETHAmount, 1e-9)
		assert.InDelta(t, 45, calc.ETFAmount, 1e-9)
		assert.InDelta(t, 45, calc.BTCAmount, 1e-9)
		assert.InDelta(t, 49, calc.ETHAmount, 1e-9)
	})

	t.Run("all zero falls back to default split", func(t *testing.T) {
		state.Allocations = model.Allocations{}
		calc := Calculate(state)
		assert.InDelta(t, 45, calc.ETFAmount, 1e-9, "33% of 139, floored")
		assert.InDelta(t, 45, calc.BTCAmount, 1e-9)
		assert.InDelta(t, 49, calc.ETHAmount, 1e-9, "34% plus rounding remainder")
	})

	t.Run("negative percentages clamp to zero", func(t *testing.T) {
		state.Allocations = model.Allocations{ETF: -20, BTC: 100, ETH: 0}
		calc := Calculate(state)
		assert.InDelta(t, 0, calc.ETFAmount, 1e-9)
		assert.InDelta(t, 139, calc.BTCAmount, 1e-9)
		assert.InDelta(t, 0, calc.ETHAmount, 1e-9)
	})
}

func TestCalculate_CustomCategories(t *testing.T) {
	state := DefaultState()
	state.Expenses["hobby"] = 40

	calc := Calculate(state)
	assert.InDelta(t, 1808, calc.TotalExpenses, 1e-9, "custom spend counts in the total")
	assert.InDelta(t, 982, calc.EssentialTotal, 1e-9, "but in neither group")
	assert.InDelta(t, 786, calc.DiscretionaryTotal, 1e-9)
}
