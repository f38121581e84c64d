package model

// Allocations is the percentage breakdown of invested funds across the three
// asset classes. The values are not required to sum to 100; they are
// normalized at calculation time.
type Allocations struct {
	ETF float64 `json:"etf"`
	BTC float64 `json:"btc"`
	ETH float64 `json:"eth"`
}

// BudgetState is the user-editable root of the budget model. Mutations go
// through the operations in the budget package, each of which returns a new
// state value.
type BudgetState struct {
	Income                  float64               `json:"income"`
	InvestmentSplit         float64               `json:"investmentSplit"`
	Expenses                map[string]float64    `json:"expenses"`
	Allocations             Allocations           `json:"allocations"`
	BufferLimit             float64               `json:"bufferLimit"`
	ImportedData            *ImportedSpendingData `json:"importedData,omitempty"`
	IsUsingImportedBaseline bool                  `json:"isUsingImportedBaseline"`
}

// CalculatedValues is the pure derivation of a BudgetState. It carries no
// independent identity and is recomputed fully on every state change.
type CalculatedValues struct {
	TotalExpenses         float64 `json:"totalExpenses"`
	Surplus               float64 `json:"surplus"`
	TotalInvestmentAmount float64 `json:"totalInvestmentAmount"`
	Buffer                float64 `json:"buffer"`
	SavingsRate           float64 `json:"savingsRate"`
	ETFAmount             float64 `json:"etfAmount"`
	BTCAmount             float64 `json:"btcAmount"`
	ETHAmount             float64 `json:"ethAmount"`
	EssentialTotal        float64 `json:"essentialTotal"`
	DiscretionaryTotal    float64 `json:"discretionaryTotal"`
}
