// Package model defines the core data structures for the budgeteer application.
package model

import (
	"crypto/sha256"
	"fmt"
)

// Transaction represents a single ledger row from a bank statement export.
// Instances are immutable once parsed.
type Transaction struct {
	Type          string  `json:"type"`
	Product       string  `json:"product"`
	StartedDate   string  `json:"startedDate"`
	CompletedDate string  `json:"completedDate"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Fee           float64 `json:"fee"`
	Currency      string  `json:"currency"`
	State         string  `json:"state"`
	Balance       float64 `json:"balance"`
}

// StateCompleted is the state marker a row must carry to be retained.
const StateCompleted = "COMPLETED"

// Hash creates a unique fingerprint for duplicate detection across imports.
func (t *Transaction) Hash() string {
	data := fmt.Sprintf("%s:%.2f:%s",
		t.CompletedDate,
		t.Amount,
		t.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
