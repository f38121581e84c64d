package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kbencic/budgeteer/internal/model"
)

// SaveImportedData persists the latest completed analysis so later commands
// can reuse it without re-reading the statement file.
func (s *Store) SaveImportedData(ctx context.Context, data model.ImportedSpendingData) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal imported data: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO imported_data (id, file_name, payload, imported_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			file_name = excluded.file_name,
			payload = excluded.payload,
			imported_at = CURRENT_TIMESTAMP
	`, data.FileName, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save imported data: %w", err)
	}
	return nil
}

// LoadImportedData returns the last stored analysis, or nil when none exists
// or the stored payload is corrupt.
func (s *Store) LoadImportedData(ctx context.Context) (*model.ImportedSpendingData, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM imported_data WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load imported data: %w", err)
	}

	var data model.ImportedSpendingData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		slog.Warn("Discarding corrupt imported data", "error", err)
		return nil, nil
	}
	return &data, nil
}
