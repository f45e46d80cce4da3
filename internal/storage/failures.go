package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fintrail/fintrail/internal/common"
	"github.com/fintrail/fintrail/internal/model"
)

// SaveFailure persists a classification failure awaiting human resolution.
// The partial extraction state is stored as JSON alongside the raw payload.
func (s *SQLiteStorage) SaveFailure(ctx context.Context, failure *model.ClassificationFailure) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateFailure(failure); err != nil {
		return err
	}

	var partial *string
	if failure.Partial != nil {
		data, err := json.Marshal(failure.Partial)
		if err != nil {
			return fmt.Errorf("failed to marshal partial extraction: %w", err)
		}
		str := string(data)
		partial = &str
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO failures (id, sender, raw_text, reason, status, partial, received_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		failure.ID, failure.Sender, failure.RawText, string(failure.Reason),
		string(failure.Status), partial, failure.ReceivedAt.UTC(), failure.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save failure: %w", err)
	}
	return nil
}

// GetFailureByID retrieves a single failure record.
func (s *SQLiteStorage) GetFailureByID(ctx context.Context, id string) (*model.ClassificationFailure, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, sender, raw_text, reason, status, partial, received_at, created_at, resolved_at
		FROM failures WHERE id = ?`, id)

	failure, err := scanFailure(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: failure %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get failure: %w", err)
	}
	return failure, nil
}

// GetPendingFailures returns all failures awaiting human disposition,
// oldest first.
func (s *SQLiteStorage) GetPendingFailures(ctx context.Context) ([]model.ClassificationFailure, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sender, raw_text, reason, status, partial, received_at, created_at, resolved_at
		FROM failures WHERE status = ? ORDER BY created_at ASC`, string(model.FailurePending))
	if err != nil {
		return nil, fmt.Errorf("failed to query failures: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var failures []model.ClassificationFailure
	for rows.Next() {
		failure, scanErr := scanFailure(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan failure: %w", scanErr)
		}
		failures = append(failures, *failure)
	}
	return failures, rows.Err()
}

// MarkFailureResolved transitions a pending failure to resolved.
func (s *SQLiteStorage) MarkFailureResolved(ctx context.Context, id string) error {
	return s.setFailureStatus(ctx, id, model.FailureResolved)
}

// MarkFailureDiscarded transitions a pending failure to discarded.
func (s *SQLiteStorage) MarkFailureDiscarded(ctx context.Context, id string) error {
	return s.setFailureStatus(ctx, id, model.FailureDiscarded)
}

func (s *SQLiteStorage) setFailureStatus(ctx context.Context, id string, status model.FailureStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE failures SET status = ?, resolved_at = ? WHERE id = ? AND status = ?`,
		string(status), time.Now().UTC(), id, string(model.FailurePending))
	if err != nil {
		return fmt.Errorf("failed to update failure status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: failure %s", common.ErrFailureNotPending, id)
	}
	return nil
}

func scanFailure(row rowScanner) (*model.ClassificationFailure, error) {
	var (
		failure    model.ClassificationFailure
		reason     string
		status     string
		partial    sql.NullString
		resolvedAt sql.NullTime
	)

	if err := row.Scan(&failure.ID, &failure.Sender, &failure.RawText, &reason,
		&status, &partial, &failure.ReceivedAt, &failure.CreatedAt, &resolvedAt); err != nil {
		return nil, err
	}

	failure.Reason = model.FailureReason(reason)
	failure.Status = model.FailureStatus(status)
	if resolvedAt.Valid {
		ts := resolvedAt.Time
		failure.ResolvedAt = &ts
	}
	if partial.Valid && partial.String != "" {
		var fields model.ExtractedFields
		if err := json.Unmarshal([]byte(partial.String), &fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal partial extraction: %w", err)
		}
		failure.Partial = &fields
	}
	return &failure, nil
}
