package model

// MerchantSpending aggregates one merchant's transactions within a category.
type MerchantSpending struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// CategorySpendingData aggregates all transactions sharing one category
// within a single analysis run. Derived data, recomputed wholesale on every
// analysis call.
type CategorySpendingData struct {
	Total          float64            `json:"total"`
	Count          int                `json:"count"`
	Average        float64            `json:"average"`
	Recurring      int                `json:"recurring"`
	TopMerchants   []MerchantSpending `json:"topMerchants"`
	MonthlyAverage float64            `json:"monthlyAverage"`
	MaxTransaction float64            `json:"maxTransaction"`
	MinTransaction float64            `json:"minTransaction"`
}

// DateRange holds the earliest and latest completed dates of an analysis as
// ISO date strings.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ImportedSpendingData is the outcome of one completed statement analysis.
type ImportedSpendingData struct {
	FileName          string                          `json:"fileName"`
	DateRange         DateRange                       `json:"dateRange"`
	TotalTransactions int                             `json:"totalTransactions"`
	TotalExpenses     float64                         `json:"totalExpenses"`
	CategoryBreakdown map[string]CategorySpendingData `json:"categoryBreakdown"`
	Uncategorized     []Transaction                   `json:"uncategorized"`
	MonthsInRange     int                             `json:"monthsInRange"`
}
