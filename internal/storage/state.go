package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kbencic/budgeteer/internal/budget"
	"github.com/kbencic/budgeteer/internal/model"
)

// SaveState persists the budget state as a single JSON document.
func (s *Store) SaveState(ctx context.Context, state model.BudgetState) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal budget state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO budget_state (id, payload, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP
	`, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save budget state: %w", err)
	}
	return nil
}

// LoadState loads the persisted budget state, sanitizing it field by field.
// A missing row or a corrupt payload yields the default state; a corrupt
// payload is never partially adopted.
func (s *Store) LoadState(ctx context.Context) (model.BudgetState, error) {
	if err := validateContext(ctx); err != nil {
		return model.BudgetState{}, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM budget_state WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return budget.DefaultState(), nil
	}
	if err != nil {
		return model.BudgetState{}, fmt.Errorf("failed to load budget state: %w", err)
	}

	return SanitizeState([]byte(payload)), nil
}

// rawState mirrors BudgetState with optional fields so missing keys are
// distinguishable from zero values.
type rawState struct {
	Income          *float64           `json:"income"`
	InvestmentSplit *float64           `json:"investmentSplit"`
	Expenses        map[string]float64 `json:"expenses"`
	Allocations     *struct {
		ETF *float64 `json:"etf"`
		BTC *float64 `json:"btc"`
		ETH *float64 `json:"eth"`
	} `json:"allocations"`
	BufferLimit             *float64                    `json:"bufferLimit"`
	ImportedData            *model.ImportedSpendingData `json:"importedData"`
	IsUsingImportedBaseline bool                        `json:"isUsingImportedBaseline"`
}

// SanitizeState turns an untrusted serialized payload into a usable budget
// state: missing fields get defaults, numeric fields are clamped into their
// documented ranges, catalog expenses outside [0, max] fall back to catalog
// defaults, and an unparseable payload falls back to the full default state.
func SanitizeState(payload []byte) model.BudgetState {
	defaults := budget.DefaultState()

	var raw rawState
	if err := json.Unmarshal(payload, &raw); err != nil {
		slog.Warn("Discarding corrupt budget state", "error", err)
		return defaults
	}

	state := defaults

	if raw.Income != nil {
		state.Income = clampFloat(*raw.Income, 0, budget.MaxIncome)
	}
	if raw.InvestmentSplit != nil {
		state.InvestmentSplit = clampFloat(*raw.InvestmentSplit, 0, 100)
	}
	if raw.BufferLimit != nil && *raw.BufferLimit >= 0 {
		state.BufferLimit = *raw.BufferLimit
	} else if raw.BufferLimit != nil {
		state.BufferLimit = 0
	}

	if raw.Allocations != nil {
		if raw.Allocations.ETF != nil {
			state.Allocations.ETF = *raw.Allocations.ETF
		}
		if raw.Allocations.BTC != nil {
			state.Allocations.BTC = *raw.Allocations.BTC
		}
		if raw.Allocations.ETH != nil {
			state.Allocations.ETH = *raw.Allocations.ETH
		}
	}

	if raw.Expenses != nil {
		expenses := make(map[string]float64, len(raw.Expenses))
		for _, cat := range model.ExpenseCategories {
			saved, ok := raw.Expenses[cat.ID]
			if ok && saved >= 0 && saved <= cat.Max {
				expenses[cat.ID] = saved
			} else {
				expenses[cat.ID] = cat.Default
			}
		}
		// Custom category ids survive as long as they hold sane values.
		for id, value := range raw.Expenses {
			if _, catalog := model.CatalogCategory(id); !catalog && value >= 0 {
				expenses[id] = value
			}
		}
		state.Expenses = expenses
	}

	state.ImportedData = raw.ImportedData
	state.IsUsingImportedBaseline = raw.IsUsingImportedBaseline

	return state
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
