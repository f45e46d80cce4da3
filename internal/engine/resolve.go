package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrail/fintrail/internal/common"
	"github.com/fintrail/fintrail/internal/dedupe"
	"github.com/fintrail/fintrail/internal/model"
)

// ResolveFailure converts a pending classification failure into a
// manually-sourced transaction. The original message's fingerprint is
// registered so that the raw text cannot later double-create a second
// transaction through the automatic path.
func (e *Engine) ResolveFailure(ctx context.Context, failure *model.ClassificationFailure, txType model.TransactionType, amount decimal.Decimal, category string) (*model.Transaction, error) {
	if failure.Status != model.FailurePending {
		return nil, fmt.Errorf("%w: failure %s is %s", common.ErrFailureNotPending, failure.ID, failure.Status)
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("resolved amount must be positive, got %s", amount)
	}
	if txType != model.TypeExpense && txType != model.TypeIncome {
		return nil, fmt.Errorf("invalid transaction type %q", txType)
	}
	if category == "" {
		category = model.Uncategorized
	}

	canonical := e.normalizer.Normalize(failure.RawText)

	occurredAt := failure.ReceivedAt
	merchant := "Manual Entry"
	accountSuffix := ""
	if failure.Partial != nil {
		if !failure.Partial.OccurredAtInferred && !failure.Partial.OccurredAt.IsZero() {
			occurredAt = failure.Partial.OccurredAt
		}
		if failure.Partial.Merchant != "" {
			merchant = failure.Partial.Merchant
		}
		accountSuffix = failure.Partial.AccountSuffix
	}

	fp := model.NewFingerprint(failure.Sender, canonical, occurredAt)
	registered, err := e.registry.CheckAndRegister(ctx, fp)
	if err != nil {
		return nil, fmt.Errorf("failed to register fingerprint: %w", err)
	}
	if registered == dedupe.ResultDuplicate {
		return nil, fmt.Errorf("%w: message already ingested under fingerprint %s", common.ErrDuplicateEntry, fp)
	}

	txn := &model.Transaction{
		ID:            uuid.NewString(),
		Type:          txType,
		Amount:        amount,
		Currency:      e.cfg.Currency,
		Category:      category,
		Merchant:      merchant,
		AccountSuffix: accountSuffix,
		OccurredAt:    occurredAt,
		Source:        model.SourceManual,
		Fingerprint:   fp,
		RawMessage:    failure.RawText,
		Sender:        failure.Sender,
		Confidence:    1.0,
	}

	slog.Info("failure resolved manually", "failure_id", failure.ID, "transaction_id", txn.ID)
	return txn, nil
}
