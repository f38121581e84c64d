package classify

import "github.com/kbencic/budgeteer/internal/model"

// Statistics summarizes how well automatic classification covered a batch.
type Statistics struct {
	Total              int
	Categorized        int
	Uncategorized      int
	CategorizationRate float64
	HighConfidence     int
	MediumConfidence   int
	LowConfidence      int
}

// Stats computes categorization-quality statistics over a classified batch.
// High confidence is >=0.9, medium is [0.6,0.9), low is (0,0.6).
func Stats(categorized []model.CategorizedTransaction) Statistics {
	stats := Statistics{Total: len(categorized)}

	for _, txn := range categorized {
		if !txn.IsUndecided() {
			stats.Categorized++
		}
		switch {
		case txn.Confidence >= 0.9:
			stats.HighConfidence++
		case txn.Confidence >= 0.6:
			stats.MediumConfidence++
		case txn.Confidence > 0:
			stats.LowConfidence++
		}
	}

	stats.Uncategorized = stats.Total - stats.Categorized
	if stats.Total > 0 {
		stats.CategorizationRate = float64(stats.Categorized) / float64(stats.Total) * 100
	}
	return stats
}
