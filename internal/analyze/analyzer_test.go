package analyze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbencic/budgeteer/internal/model"
)

const threeRowCSV = `Type,Product,Started Date,Completed Date,Description,Amount,Fee,Currency,State,Balance
CARD_PAYMENT,Current,2024-01-15 10:00:00,2024-01-15 10:00:00,Bolt,-10.50,0,EUR,COMPLETED,989.50
CARD_PAYMENT,Current,2024-02-16 19:00:00,2024-02-16 19:00:00,Wolt,-17.55,0,EUR,COMPLETED,971.95
CARD_PAYMENT,Current,2024-03-18 12:00:00,2024-03-18 12:00:00,Lidl,-42.10,0,EUR,COMPLETED,929.85
`

func TestAnalyzer_Analyze(t *testing.T) {
	data := New().Analyze(threeRowCSV, "statement.csv", nil)

	assert.Equal(t, "statement.csv", data.FileName)
	assert.Equal(t, 3, data.TotalTransactions)
	assert.InDelta(t, 70.15, data.TotalExpenses, 1e-9)
	assert.Equal(t, "2024-01-15", data.DateRange.Start)
	assert.Equal(t, "2024-03-18", data.DateRange.End)
	assert.Equal(t, 3, data.MonthsInRange)
	assert.Empty(t, data.Uncategorized)

	require.Contains(t, data.CategoryBreakdown, "transport")
	require.Contains(t, data.CategoryBreakdown, "food-delivery")
	require.Contains(t, data.CategoryBreakdown, "groceries")

	transport := data.CategoryBreakdown["transport"]
	assert.InDelta(t, 10.50, transport.Total, 1e-9)
	assert.Equal(t, 1, transport.Count)
	assert.InDelta(t, 10.50/3, transport.MonthlyAverage, 1e-9)
	require.Len(t, transport.TopMerchants, 1)
	assert.Equal(t, "Bolt", transport.TopMerchants[0].Name)
}

func TestAnalyzer_Analyze_CustomMapping(t *testing.T) {
	data := New().Analyze(threeRowCSV, "statement.csv", map[string]string{"Bolt": "entertainment"})

	assert.NotContains(t, data.CategoryBreakdown, "transport")
	require.Contains(t, data.CategoryBreakdown, "entertainment")
	assert.InDelta(t, 10.50, data.CategoryBreakdown["entertainment"].Total, 1e-9)
	assert.InDelta(t, 70.15, data.TotalExpenses, 1e-9)
}

func TestAnalyzer_Analyze_MappingToUndecided(t *testing.T) {
	csvText := `Type,Product,Started Date,Completed Date,Description,Amount,Fee,Currency,State,Balance
CARD_PAYMENT,Current,2024-01-15 10:00:00,2024-01-15 10:00:00,Mystery Shop 42,-9.99,0,EUR,COMPLETED,100
`
	data := New().Analyze(csvText, "statement.csv", map[string]string{"Mystery Shop 42": model.CategoryUndecided})

	assert.Empty(t, data.CategoryBreakdown)
	require.Len(t, data.Uncategorized, 1)
	assert.Equal(t, "Mystery Shop 42", data.Uncategorized[0].Description)
	assert.InDelta(t, 0, data.TotalExpenses, 1e-9, "uncategorized spend is not in totals")
}

func TestAnalyzer_Analyze_Idempotent(t *testing.T) {
	analyzer := New()
	first := analyzer.Analyze(threeRowCSV, "statement.csv", nil)
	second := analyzer.Analyze(threeRowCSV, "statement.csv", nil)
	assert.Equal(t, first, second)
}

func TestAnalyzer_Analyze_NoParseableDates(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { now = restore }()

	csvText := `Type,Product,Started Date,Completed Date,Description,Amount,Fee,Currency,State,Balance
CARD_PAYMENT,Current,garbage,garbage,Bolt,-10,0,EUR,COMPLETED,100
`
	data := New().Analyze(csvText, "statement.csv", nil)
	assert.Equal(t, "2024-06-01", data.DateRange.Start)
	assert.Equal(t, "2024-06-01", data.DateRange.End)
	assert.Equal(t, 1, data.MonthsInRange)
	assert.Equal(t, 1, data.TotalTransactions)
}

func TestAnalyzer_Analyze_SameMonthRange(t *testing.T) {
	csvText := `Type,Product,Started Date,Completed Date,Description,Amount,Fee,Currency,State,Balance
CARD_PAYMENT,Current,2024-01-02,2024-01-02,Bolt,-5,0,EUR,COMPLETED,100
CARD_PAYMENT,Current,2024-01-28,2024-01-28,Bolt,-5,0,EUR,COMPLETED,95
`
	data := New().Analyze(csvText, "statement.csv", nil)
	assert.Equal(t, 1, data.MonthsInRange)
}

func TestAnalyzer_Analyze_YearBoundaryRange(t *testing.T) {
	csvText := `Type,Product,Started Date,Completed Date,Description,Amount,Fee,Currency,State,Balance
CARD_PAYMENT,Current,2023-11-05,2023-11-05,Bolt,-5,0,EUR,COMPLETED,100
CARD_PAYMENT,Current,2024-02-05,2024-02-05,Bolt,-5,0,EUR,COMPLETED,95
`
	data := New().Analyze(csvText, "statement.csv", nil)
	assert.Equal(t, 4, data.MonthsInRange)
}

func TestAnalyzer_Analyze_RecurringAndTopMerchants(t *testing.T) {
	csvText := `Type,Product,Started Date,Completed Date,Description,Amount,Fee,Currency,State,Balance
CARD_PAYMENT,Current,2024-01-01,2024-01-01,Lidl,-30,0,EUR,COMPLETED,100
CARD_PAYMENT,Current,2024-01-05,2024-01-05,Lidl,-20,0,EUR,COMPLETED,70
CARD_PAYMENT,Current,2024-01-08,2024-01-08,Konzum,-60,0,EUR,COMPLETED,10
CARD_PAYMENT,Current,2024-01-10,2024-01-10,Spar,-5,0,EUR,COMPLETED,5
`
	data := New().Analyze(csvText, "statement.csv", nil)

	groceries := data.CategoryBreakdown["groceries"]
	assert.Equal(t, 4, groceries.Count)
	assert.InDelta(t, 115, groceries.Total, 1e-9)
	assert.Equal(t, 1, groceries.Recurring, "only Lidl repeats")
	assert.InDelta(t, 60, groceries.MaxTransaction, 1e-9)
	assert.InDelta(t, 5, groceries.MinTransaction, 1e-9)

	require.Len(t, groceries.TopMerchants, 3)
	assert.Equal(t, "Konzum", groceries.TopMerchants[0].Name, "sorted by total descending")
	assert.Equal(t, "Lidl", groceries.TopMerchants[1].Name)
	assert.InDelta(t, 50, groceries.TopMerchants[1].Amount, 1e-9)
	assert.Equal(t, 2, groceries.TopMerchants[1].Count)
	assert.Equal(t, "Spar", groceries.TopMerchants[2].Name)
}

func TestAnalyzer_Analyze_TopMerchantsCapped(t *testing.T) {
	csvText := `Type,Product,Started Date,Completed Date,Description,Amount,Fee,Currency,State,Balance
CARD_PAYMENT,Current,2024-01-01,2024-01-01,Lidl,-10,0,EUR,COMPLETED,100
CARD_PAYMENT,Current,2024-01-02,2024-01-02,Konzum,-20,0,EUR,COMPLETED,90
CARD_PAYMENT,Current,2024-01-03,2024-01-03,Spar,-30,0,EUR,COMPLETED,60
CARD_PAYMENT,Current,2024-01-04,2024-01-04,Kaufland,-40,0,EUR,COMPLETED,20
CARD_PAYMENT,Current,2024-01-05,2024-01-05,Plodine,-50,0,EUR,COMPLETED,10
CARD_PAYMENT,Current,2024-01-06,2024-01-06,Studenac,-60,0,EUR,COMPLETED,5
`
	data := New().Analyze(csvText, "statement.csv", nil)
	groceries := data.CategoryBreakdown["groceries"]
	require.Len(t, groceries.TopMerchants, 5)
	assert.Equal(t, "Studenac", groceries.TopMerchants[0].Name)
}

func TestAnalyzer_Analyze_ProgressCallback(t *testing.T) {
	var calls []int
	analyzer := New(WithProgress(func(done, total int) {
		assert.Equal(t, 3, total)
		calls = append(calls, done)
	}))

	analyzer.Analyze(threeRowCSV, "statement.csv", nil)
	assert.Equal(t, []int{1, 2, 3}, calls)
}
