package budget

import (
	"math"
	"time"

	"github.com/kbencic/budgeteer/internal/model"
)

// Fixed annual growth assumptions per asset class; monthly rates are the
// simple division by 12, not a geometric equivalent.
const (
	etfMonthlyRate = 0.07 / 12
	btcMonthlyRate = 0.15 / 12
	ethMonthlyRate = 0.12 / 12

	projectionMonths = 120
)

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// now is stubbed in tests.
var now = time.Now

// YearProjection is the month-by-month 12-month simulation: six parallel
// series plus summary figures. Series values for the asset and buffer
// buckets are rounded to whole currency units; the invested series is not.
type YearProjection struct {
	Labels     []string
	ETF        []float64
	BTC        []float64
	ETH        []float64
	Buffer     []float64
	TotalValue []float64
	Invested   []float64

	StartingAmount float64
	EndingAmount   float64
	TotalInvested  float64
	Growth         float64
	// BufferLimitReachedMonth is the 0-indexed month the buffer limit was
	// reached and the split switched to 100% investment, or -1 when it
	// never triggered (always -1 for bufferLimit 0, meaning unlimited).
	BufferLimitReachedMonth int
	FinalBuffer             float64
}

// ProjectYear simulates twelve months of contributions and compounding,
// starting from zero balances, with labels beginning at the current calendar
// month.
func ProjectYear(state model.BudgetState, calc model.CalculatedValues) YearProjection {
	return projectYear(state, calc, int(now().Month())-1)
}

func projectYear(state model.BudgetState, calc model.CalculatedValues, currentMonth int) YearProjection {
	monthlySurplus := state.Income - calc.TotalExpenses

	etfPercent := state.Allocations.ETF
	btcPercent := state.Allocations.BTC
	ethPercent := state.Allocations.ETH
	if total := etfPercent + btcPercent + ethPercent; total != 100 && total > 0 {
		etfPercent = math.Round(etfPercent / total * 100)
		btcPercent = math.Round(btcPercent / total * 100)
		ethPercent = 100 - etfPercent - btcPercent
	}

	splitPercent := state.InvestmentSplit
	initialInvestment := math.Max(0, math.Floor(monthlySurplus*splitPercent/100))
	monthlyETF := math.Floor(initialInvestment * etfPercent / 100)
	monthlyBTC := math.Floor(initialInvestment * btcPercent / 100)
	monthlyETH := initialInvestment - monthlyETF - monthlyBTC

	p := YearProjection{
		Labels:                  make([]string, 0, 12),
		ETF:                     make([]float64, 0, 12),
		BTC:                     make([]float64, 0, 12),
		ETH:                     make([]float64, 0, 12),
		Buffer:                  make([]float64, 0, 12),
		TotalValue:              make([]float64, 0, 12),
		Invested:                make([]float64, 0, 12),
		BufferLimitReachedMonth: -1,
	}
	for i := 0; i < 12; i++ {
		p.Labels = append(p.Labels, monthLabels[(currentMonth+i)%12])
	}

	var etfTotal, btcTotal, ethTotal, bufferTotal, totalInvested float64
	usingFullInvestment := false

	for month := 0; month < 12; month++ {
		// Once the accumulated buffer reaches the limit the split
		// switches permanently to full investment, contribution
		// included.
		if state.BufferLimit > 0 && bufferTotal >= state.BufferLimit && !usingFullInvestment {
			usingFullInvestment = true
			p.BufferLimitReachedMonth = month
			splitPercent = 100
		}

		investment := math.Max(0, math.Floor(monthlySurplus*splitPercent/100))
		bufferContribution := monthlySurplus - investment

		etfContribution := monthlyETF
		btcContribution := monthlyBTC
		ethContribution := monthlyETH
		if usingFullInvestment {
			etfContribution = math.Floor(investment * etfPercent / 100)
			btcContribution = math.Floor(investment * btcPercent / 100)
			ethContribution = investment - etfContribution - btcContribution
		}

		etfTotal += etfContribution
		btcTotal += btcContribution
		ethTotal += ethContribution
		bufferTotal += bufferContribution
		totalInvested += investment

		// Growth compounds the asset buckets only; the buffer holds
		// cash.
		etfTotal *= 1 + etfMonthlyRate
		btcTotal *= 1 + btcMonthlyRate
		ethTotal *= 1 + ethMonthlyRate

		totalValue := etfTotal + btcTotal + ethTotal

		p.ETF = append(p.ETF, math.Round(etfTotal))
		p.BTC = append(p.BTC, math.Round(btcTotal))
		p.ETH = append(p.ETH, math.Round(ethTotal))
		p.Buffer = append(p.Buffer, math.Round(bufferTotal))
		p.TotalValue = append(p.TotalValue, math.Round(totalValue))
		p.Invested = append(p.Invested, totalInvested)
	}

	p.StartingAmount = 0
	p.EndingAmount = p.TotalValue[11]
	p.TotalInvested = totalInvested
	p.Growth = p.EndingAmount - totalInvested
	p.FinalBuffer = p.Buffer[11]
	return p
}

// DecadeProjection is the closed-form 10-year estimate.
type DecadeProjection struct {
	MonthlyAmount  float64
	TotalInvested  float64
	EstimatedValue float64
	Profit         float64
}

// ProjectDecade computes the 120-month future value of the current monthly
// per-asset contributions using the annuity-due formula
// FV = PMT * ((1+r)^n - 1)/r * (1+r), each asset at its own rate.
func ProjectDecade(calc model.CalculatedValues) DecadeProjection {
	if calc.TotalInvestmentAmount == 0 {
		return DecadeProjection{}
	}

	estimated := annuityDue(calc.ETFAmount, etfMonthlyRate) +
		annuityDue(calc.BTCAmount, btcMonthlyRate) +
		annuityDue(calc.ETHAmount, ethMonthlyRate)
	invested := calc.TotalInvestmentAmount * projectionMonths

	return DecadeProjection{
		MonthlyAmount:  calc.TotalInvestmentAmount,
		TotalInvested:  invested,
		EstimatedValue: estimated,
		Profit:         estimated - invested,
	}
}

func annuityDue(payment, rate float64) float64 {
	if payment <= 0 {
		return 0
	}
	return payment * ((math.Pow(1+rate, projectionMonths) - 1) / rate) * (1 + rate)
}
