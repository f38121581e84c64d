package classify

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbencic/budgeteer/internal/model"
)

func txn(description, txnType string) model.Transaction {
	return model.Transaction{
		Type:        txnType,
		Description: description,
		Amount:      -10,
		State:       model.StateCompleted,
	}
}

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	tests := []struct {
		name           string
		txn            model.Transaction
		wantCategory   string
		wantConfidence float64
	}{
		{
			name:           "bolt is transport",
			txn:            txn("Bolt", "CARD_PAYMENT"),
			wantCategory:   "transport",
			wantConfidence: 1.0,
		},
		{
			name:           "wolt is food delivery",
			txn:            txn("Wolt", "CARD_PAYMENT"),
			wantCategory:   "food-delivery",
			wantConfidence: 1.0,
		},
		{
			name:           "case-insensitive merchant match",
			txn:            txn("LIDL ZAGREB", "CARD_PAYMENT"),
			wantCategory:   "groceries",
			wantConfidence: 1.0,
		},
		{
			name:           "atm type is cash",
			txn:            txn("Some machine", "ATM"),
			wantCategory:   "cash",
			wantConfidence: 1.0,
		},
		{
			name:           "person-to-person transfer",
			txn:            txn("Ivan Horvat", "TRANSFER"),
			wantCategory:   "cash",
			wantConfidence: 0.5,
		},
		{
			name:           "lowercase name misses case-sensitive person pattern",
			txn:            txn("ivan horvat", "CARD_PAYMENT"),
			wantCategory:   model.CategoryUndecided,
			wantConfidence: 0,
		},
		{
			name:           "unknown merchant is undecided",
			txn:            txn("Totally Unknown Store 123", "CARD_PAYMENT"),
			wantCategory:   model.CategoryUndecided,
			wantConfidence: 0,
		},
		{
			name:           "empty description is undecided",
			txn:            txn("", "CARD_PAYMENT"),
			wantCategory:   model.CategoryUndecided,
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.txn)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
		})
	}
}

func TestClassifier_Classify_TieBreak(t *testing.T) {
	// Equal scores keep the first-declared category.
	rules := []CategoryRules{
		{Category: "first", Patterns: []Pattern{merchant(`(?i)shop`, 0.8)}},
		{Category: "second", Patterns: []Pattern{merchant(`(?i)shop`, 0.8)}},
	}
	got := NewClassifier(rules).Classify(txn("Shop", "CARD_PAYMENT"))
	assert.Equal(t, "first", got.Category)
	assert.InDelta(t, 0.8, got.Confidence, 1e-9)
}

func TestClassifier_Classify_HigherWeightWins(t *testing.T) {
	rules := []CategoryRules{
		{Category: "weak", Patterns: []Pattern{merchant(`(?i)shop`, 0.6)}},
		{Category: "strong", Patterns: []Pattern{merchant(`(?i)shop`, 0.9)}},
	}
	got := NewClassifier(rules).Classify(txn("Shop", "CARD_PAYMENT"))
	assert.Equal(t, "strong", got.Category)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
}

func TestClassifier_Classify_MultiMatchNotSummed(t *testing.T) {
	// One pattern matching on several fields contributes its weight once.
	rules := []CategoryRules{
		{Category: "cash", Patterns: []Pattern{{
			Merchant:    regexp.MustCompile(`(?i)atm`),
			Type:        regexp.MustCompile(`(?i)atm`),
			Description: regexp.MustCompile(`(?i)atm`),
			Weight:      0.7,
		}}},
	}
	got := NewClassifier(rules).Classify(txn("ATM Withdrawal", "ATM"))
	assert.InDelta(t, 0.7, got.Confidence, 1e-9)
}

func TestClassifier_ClassifyAll(t *testing.T) {
	classifier := NewClassifier(DefaultRules())
	txns := []model.Transaction{
		txn("Bolt", "CARD_PAYMENT"),
		txn("Wolt", "CARD_PAYMENT"),
		txn("Lidl", "CARD_PAYMENT"),
	}

	categorized := classifier.ClassifyAll(txns)
	require.Len(t, categorized, 3)
	assert.Equal(t, "transport", categorized[0].Category)
	assert.Equal(t, "food-delivery", categorized[1].Category)
	assert.Equal(t, "groceries", categorized[2].Category)
}

func TestApplyMappings(t *testing.T) {
	classifier := NewClassifier(DefaultRules())
	categorized := classifier.ClassifyAll([]model.Transaction{
		txn("Bolt", "CARD_PAYMENT"),
		txn("Mystery Shop", "CARD_PAYMENT"),
	})

	t.Run("override beats automatic result", func(t *testing.T) {
		got := ApplyMappings(categorized, map[string]string{"Bolt": "entertainment"})
		assert.Equal(t, "entertainment", got[0].Category)
		assert.InDelta(t, 1.0, got[0].Confidence, 1e-9)
		assert.Equal(t, model.CategoryUndecided, got[1].Category)
	})

	t.Run("exact match only", func(t *testing.T) {
		got := ApplyMappings(categorized, map[string]string{"bolt": "entertainment"})
		assert.Equal(t, "transport", got[0].Category)
	})

	t.Run("mapping to undecided is a no-op", func(t *testing.T) {
		got := ApplyMappings(categorized, map[string]string{"Bolt": model.CategoryUndecided})
		assert.Equal(t, "transport", got[0].Category)
		assert.InDelta(t, 1.0, got[0].Confidence, 1e-9)
	})

	t.Run("empty mappings return input unchanged", func(t *testing.T) {
		got := ApplyMappings(categorized, nil)
		assert.Equal(t, categorized, got)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		_ = ApplyMappings(categorized, map[string]string{"Bolt": "entertainment"})
		assert.Equal(t, "transport", categorized[0].Category)
	})
}
