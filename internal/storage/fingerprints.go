package storage

import (
	"context"
	"fmt"

	"github.com/fintrail/fintrail/internal/dedupe"
	"github.com/fintrail/fintrail/internal/model"
)

// CheckAndRegister atomically records a fingerprint. The primary-key
// constraint makes INSERT OR IGNORE the compare-and-set: exactly one caller
// gets a row in, and RowsAffected discriminates new from duplicate. There
// is no separate read, so no read-then-write race.
func (s *SQLiteStorage) CheckAndRegister(ctx context.Context, fp model.Fingerprint) (dedupe.RegisterResult, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if fp == "" {
		return "", fmt.Errorf("fingerprint cannot be empty")
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO fingerprints (fingerprint) VALUES (?)`, string(fp))
	if err != nil {
		return "", fmt.Errorf("failed to register fingerprint: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return dedupe.ResultDuplicate, nil
	}
	return dedupe.ResultNew, nil
}
