// Package classify assigns spending categories to transactions via weighted
// pattern matching.
package classify

import (
	"github.com/kbencic/budgeteer/internal/model"
)

// Classifier evaluates transactions against an ordered, read-only rule table.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	rules []CategoryRules
}

// NewClassifier creates a classifier over the given rule table.
func NewClassifier(rules []CategoryRules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify assigns the best-guess category and confidence to one transaction.
// Every pattern of every category is evaluated; the strictly highest score
// wins, so under equal scores the first-declared category stands. When no
// pattern fires the result is the undecided sentinel with confidence 0.
func (c *Classifier) Classify(txn model.Transaction) model.CategorizedTransaction {
	bestCategory := model.CategoryUndecided
	bestScore := 0.0

	for _, entry := range c.rules {
		for _, pattern := range entry.Patterns {
			score := 0.0

			if pattern.Merchant != nil && txn.Description != "" && pattern.Merchant.MatchString(txn.Description) {
				score = pattern.Weight
			}
			if pattern.Type != nil && txn.Type != "" && pattern.Type.MatchString(txn.Type) {
				score = max(score, pattern.Weight)
			}
			if pattern.Description != nil && txn.Description != "" && pattern.Description.MatchString(txn.Description) {
				score = max(score, pattern.Weight)
			}

			if score > bestScore {
				bestScore = score
				bestCategory = entry.Category
			}
		}
	}

	return model.CategorizedTransaction{
		Transaction: txn,
		Category:    bestCategory,
		Confidence:  bestScore,
	}
}

// ClassifyAll classifies a batch of transactions in order.
func (c *Classifier) ClassifyAll(txns []model.Transaction) []model.CategorizedTransaction {
	categorized := make([]model.CategorizedTransaction, len(txns))
	for i, txn := range txns {
		categorized[i] = c.Classify(txn)
	}
	return categorized
}

// ApplyMappings applies user-supplied merchant overrides as a second pass.
// A transaction whose description exactly matches a mapping key is forced to
// the mapped category with confidence 1.0. Mapping a merchant to the
// undecided sentinel is a no-op, leaving the automatic result in place.
func ApplyMappings(categorized []model.CategorizedTransaction, mappings map[string]string) []model.CategorizedTransaction {
	if len(mappings) == 0 {
		return categorized
	}

	result := make([]model.CategorizedTransaction, len(categorized))
	for i, txn := range categorized {
		if category, ok := mappings[txn.Description]; ok && category != model.CategoryUndecided {
			txn.Category = category
			txn.Confidence = 1.0
		}
		result[i] = txn
	}
	return result
}
