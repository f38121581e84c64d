package storage

import (
	"context"
	"fmt"
)

// SaveMapping inserts or updates a custom merchant-to-category mapping. The
// merchant description must match transaction descriptions exactly.
func (s *Store) SaveMapping(ctx context.Context, description, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(description, "description"); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO merchant_mappings (description, category)
		VALUES (?, ?)
		ON CONFLICT(description) DO UPDATE SET category = excluded.category
	`, description, category)
	if err != nil {
		return fmt.Errorf("failed to save mapping: %w", err)
	}
	return nil
}

// DeleteMapping removes a custom mapping. Removing a mapping that does not
// exist is not an error.
func (s *Store) DeleteMapping(ctx context.Context, description string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(description, "description"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM merchant_mappings WHERE description = ?`, description)
	if err != nil {
		return fmt.Errorf("failed to delete mapping: %w", err)
	}
	return nil
}

// ListMappings returns all custom mappings keyed by merchant description,
// ready to hand to the classifier's override pass.
func (s *Store) ListMappings(ctx context.Context) (map[string]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT description, category FROM merchant_mappings ORDER BY description
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	mappings := make(map[string]string)
	for rows.Next() {
		var description, category string
		if err := rows.Scan(&description, &category); err != nil {
			return nil, fmt.Errorf("failed to scan mapping: %w", err)
		}
		mappings[description] = category
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mappings: %w", err)
	}
	return mappings, nil
}
