package model

// CategoryUndecided is the sentinel category meaning no automatic or manual
// categorization matched.
const CategoryUndecided = "undecided"

// CategorizedTransaction is a Transaction with a best-guess category and a
// confidence score in [0,1]. Confidence 0 means unmatched; 1.0 means either a
// perfect pattern match or a user override.
type CategorizedTransaction struct {
	Transaction
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// IsUndecided reports whether the transaction is still uncategorized.
func (c CategorizedTransaction) IsUndecided() bool {
	return c.Category == CategoryUndecided
}
