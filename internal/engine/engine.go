// Package engine implements the transaction extraction pipeline: raw
// inbound messages in, exactly one of Created, Duplicate, or Failed out.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrail/fintrail/internal/dedupe"
	"github.com/fintrail/fintrail/internal/model"
)

// Config holds configuration options for the pipeline engine.
type Config struct {
	// Currency tags every produced transaction amount.
	Currency string
	// ConfidenceThreshold routes matched extractions below it to the
	// manual queue instead of creating a transaction.
	ConfidenceThreshold float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Currency:            "INR",
		ConfidenceThreshold: 0.50,
	}
}

// Engine orchestrates the pipeline. Every stage is pure; the fingerprint
// registry is the only shared state, so one goroutine per message is safe.
type Engine struct {
	normalizer Normalizer
	identifier BankIdentifier
	extractor  FieldExtractor
	classifier CategoryClassifier
	registry   dedupe.Registry
	cfg        Config
}

// New creates an engine with the default configuration.
func New(normalizer Normalizer, identifier BankIdentifier, extractor FieldExtractor, classifier CategoryClassifier, registry dedupe.Registry) *Engine {
	return NewWithConfig(normalizer, identifier, extractor, classifier, registry, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(normalizer Normalizer, identifier BankIdentifier, extractor FieldExtractor, classifier CategoryClassifier, registry dedupe.Registry, cfg Config) *Engine {
	if cfg.Currency == "" {
		cfg.Currency = DefaultConfig().Currency
	}
	return &Engine{
		normalizer: normalizer,
		identifier: identifier,
		extractor:  extractor,
		classifier: classifier,
		registry:   registry,
		cfg:        cfg,
	}
}

// Process runs one message through the pipeline. Malformed input never
// returns an error: expected failures come back as a Failed outcome. The
// only error return is a registry I/O failure, in which case the message
// was neither ingested nor registered and may be resubmitted.
func (e *Engine) Process(ctx context.Context, msg model.InboundMessage) (model.PipelineOutcome, error) {
	canonical := e.normalizer.Normalize(msg.Text)

	bank, identified := e.identifier.Identify(msg.Sender, canonical)
	slog.Debug("bank identification", "sender", msg.Sender, "bank", bank, "identified", identified)

	result := e.extractor.Extract(msg, canonical, bank)
	if !result.Matched {
		// An unparseable message is not registered as a fingerprint, so
		// a reformatted resend of the same content can still succeed.
		return model.FailedOutcome(e.routeFailure(msg, result.Reason, nil)), nil
	}

	fields := result.Fields
	assertExtractionContract(fields)

	if fields.Confidence < e.cfg.ConfidenceThreshold {
		slog.Warn("extraction below confidence threshold",
			"confidence", fields.Confidence,
			"threshold", e.cfg.ConfidenceThreshold)
		return model.FailedOutcome(e.routeFailure(msg, model.ReasonLowConfidence, &fields)), nil
	}

	fp := model.NewFingerprint(msg.Sender, canonical, fields.OccurredAt)
	registered, err := e.registry.CheckAndRegister(ctx, fp)
	if err != nil {
		return model.PipelineOutcome{}, fmt.Errorf("failed to register fingerprint: %w", err)
	}
	if registered == dedupe.ResultDuplicate {
		slog.Debug("duplicate message suppressed", "fingerprint", fp)
		return model.DuplicateOutcome(), nil
	}

	category := e.classifier.Classify(fields.Merchant, fields.Direction)

	txn := &model.Transaction{
		ID:            uuid.NewString(),
		Type:          fields.Direction.TransactionType(),
		Amount:        fields.Amount,
		Currency:      e.cfg.Currency,
		Category:      category,
		Merchant:      fields.Merchant,
		AccountSuffix: fields.AccountSuffix,
		Balance:       fields.Balance,
		OccurredAt:    fields.OccurredAt,
		Source:        model.SourceAuto,
		Fingerprint:   fp,
		RawMessage:    msg.Text,
		Sender:        msg.Sender,
		Confidence:    fields.Confidence,
	}

	slog.Info("transaction created",
		"merchant", txn.Merchant,
		"amount", txn.Amount,
		"type", txn.Type,
		"category", txn.Category)
	return model.CreatedOutcome(txn), nil
}

// routeFailure constructs a manual-resolution record for a message the
// pipeline could not confidently classify. Pure construction: persisting
// the record is the caller's responsibility.
func (e *Engine) routeFailure(msg model.InboundMessage, reason model.FailureReason, partial *model.ExtractedFields) *model.ClassificationFailure {
	slog.Warn("message routed to manual resolution", "sender", msg.Sender, "reason", reason)
	return &model.ClassificationFailure{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		ReceivedAt: msg.ReceivedAt,
		Sender:     msg.Sender,
		RawText:    msg.Text,
		Reason:     reason,
		Status:     model.FailurePending,
		Partial:    partial,
	}
}

// assertExtractionContract aborts on a Matched result that violates the
// extractor contract. This is a programming error, never a data error.
func assertExtractionContract(fields model.ExtractedFields) {
	if fields.Amount.Sign() <= 0 {
		panic(fmt.Sprintf("extractor produced matched result with non-positive amount %s", fields.Amount))
	}
	if fields.Direction != model.DirectionDebit && fields.Direction != model.DirectionCredit {
		panic(fmt.Sprintf("extractor produced matched result with direction %q", fields.Direction))
	}
}
