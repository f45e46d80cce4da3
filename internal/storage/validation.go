package storage

import (
	"context"
	"fmt"

	"github.com/fintrail/fintrail/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("transaction cannot be nil")
	}
	if txn.ID == "" {
		return fmt.Errorf("transaction ID cannot be empty")
	}
	if txn.Fingerprint == "" {
		return fmt.Errorf("transaction fingerprint cannot be empty")
	}
	return txn.Validate()
}

func validateFailure(failure *model.ClassificationFailure) error {
	if failure == nil {
		return fmt.Errorf("failure cannot be nil")
	}
	if failure.ID == "" {
		return fmt.Errorf("failure ID cannot be empty")
	}
	if failure.RawText == "" {
		return fmt.Errorf("failure raw text cannot be empty")
	}
	if failure.Reason == "" {
		return fmt.Errorf("failure reason cannot be empty")
	}
	return nil
}
