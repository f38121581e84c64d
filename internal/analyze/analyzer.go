// Package analyze orchestrates statement parsing, classification and
// per-category aggregation.
package analyze

import (
	"math"
	"sort"
	"time"

	"github.com/kbencic/budgeteer/internal/classify"
	"github.com/kbencic/budgeteer/internal/model"
	"github.com/kbencic/budgeteer/internal/revolut"
)

// dateLayouts are the completed-date formats accepted for range computation.
// Dates that parse with none of them are excluded from the range only; the
// transaction still counts everywhere else.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// now is stubbed in tests.
var now = time.Now

// Analyzer runs the full pure pipeline: parse, classify, apply overrides,
// aggregate. Re-running on identical input yields identical output; there is
// no cached state to invalidate.
type Analyzer struct {
	parser     *revolut.Parser
	classifier *classify.Classifier
	progress   func(done, total int)
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClassifier replaces the default rule table.
func WithClassifier(c *classify.Classifier) Option {
	return func(a *Analyzer) { a.classifier = c }
}

// WithProgress registers a callback invoked after each classified
// transaction.
func WithProgress(fn func(done, total int)) Option {
	return func(a *Analyzer) { a.progress = fn }
}

// New creates an Analyzer with the built-in rule table.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		parser:     revolut.NewParser(),
		classifier: classify.NewClassifier(classify.DefaultRules()),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze parses CSV text and returns categorized spending data. Custom
// mappings are applied as a second pass after automatic classification.
func (a *Analyzer) Analyze(csvText, fileName string, customMappings map[string]string) model.ImportedSpendingData {
	transactions := a.parser.Parse(csvText)
	return a.AnalyzeTransactions(transactions, fileName, customMappings)
}

// AnalyzeTransactions classifies and aggregates already-parsed transactions.
// The OFX import path feeds this directly.
func (a *Analyzer) AnalyzeTransactions(transactions []model.Transaction, fileName string, customMappings map[string]string) model.ImportedSpendingData {
	categorized := make([]model.CategorizedTransaction, len(transactions))
	for i, txn := range transactions {
		categorized[i] = a.classifier.Classify(txn)
		if a.progress != nil {
			a.progress(i+1, len(transactions))
		}
	}
	categorized = classify.ApplyMappings(categorized, customMappings)

	startDate, endDate, monthsInRange := dateRange(transactions)

	categoryMap := make(map[string][]model.CategorizedTransaction)
	var uncategorized []model.Transaction
	for _, txn := range categorized {
		if txn.IsUndecided() {
			uncategorized = append(uncategorized, txn.Transaction)
		} else {
			categoryMap[txn.Category] = append(categoryMap[txn.Category], txn)
		}
	}

	categoryBreakdown := make(map[string]model.CategorySpendingData, len(categoryMap))
	totalExpenses := 0.0
	for category, txns := range categoryMap {
		data := aggregate(txns, monthsInRange)
		totalExpenses += data.Total
		categoryBreakdown[category] = data
	}

	return model.ImportedSpendingData{
		FileName: fileName,
		DateRange: model.DateRange{
			Start: startDate.Format("2006-01-02"),
			End:   endDate.Format("2006-01-02"),
		},
		TotalTransactions: len(transactions),
		TotalExpenses:     totalExpenses,
		CategoryBreakdown: categoryBreakdown,
		Uncategorized:     uncategorized,
		MonthsInRange:     monthsInRange,
	}
}

// dateRange finds the earliest and latest parseable completed dates and the
// inclusive month span between them. With no parseable dates both endpoints
// default to now and the span floors to 1.
func dateRange(transactions []model.Transaction) (start, end time.Time, months int) {
	var dates []time.Time
	for _, txn := range transactions {
		if d, ok := parseDate(txn.CompletedDate); ok {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	if len(dates) == 0 {
		n := now()
		return n, n, 1
	}

	start, end = dates[0], dates[len(dates)-1]
	months = (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if months < 1 {
		months = 1
	}
	return start, end, months
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// aggregate computes the spending statistics for one category group.
// Callers only pass non-empty groups.
func aggregate(txns []model.CategorizedTransaction, monthsInRange int) model.CategorySpendingData {
	total := 0.0
	minAmount := math.Inf(1)
	maxAmount := 0.0

	type merchantTotals struct {
		amount float64
		count  int
	}
	merchants := make(map[string]*merchantTotals)
	var merchantOrder []string

	for _, txn := range txns {
		amount := math.Abs(txn.Amount)
		total += amount
		if amount > maxAmount {
			maxAmount = amount
		}
		if amount < minAmount {
			minAmount = amount
		}

		m, ok := merchants[txn.Description]
		if !ok {
			m = &merchantTotals{}
			merchants[txn.Description] = m
			merchantOrder = append(merchantOrder, txn.Description)
		}
		m.amount += amount
		m.count++
	}

	topMerchants := make([]model.MerchantSpending, 0, len(merchantOrder))
	recurring := 0
	for _, name := range merchantOrder {
		m := merchants[name]
		topMerchants = append(topMerchants, model.MerchantSpending{
			Name:   name,
			Amount: m.amount,
			Count:  m.count,
		})
		if m.count > 1 {
			recurring++
		}
	}
	sort.SliceStable(topMerchants, func(i, j int) bool {
		return topMerchants[i].Amount > topMerchants[j].Amount
	})
	if len(topMerchants) > 5 {
		topMerchants = topMerchants[:5]
	}

	return model.CategorySpendingData{
		Total:          total,
		Count:          len(txns),
		Average:        total / float64(len(txns)),
		Recurring:      recurring,
		TopMerchants:   topMerchants,
		MonthlyAverage: total / float64(monthsInRange),
		MaxTransaction: maxAmount,
		MinTransaction: minAmount,
	}
}
