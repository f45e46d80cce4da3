package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankID identifies a bank/format family recognized by the signature matcher.
type BankID string

// Known bank format families.
const (
	BankHDFC    BankID = "hdfc"
	BankSBI     BankID = "sbi"
	BankICICI   BankID = "icici"
	BankAxis    BankID = "axis"
	BankGeneric BankID = "generic"
)

// FailureReason is a machine-readable code for why extraction could not
// produce a transaction.
type FailureReason string

// Failure reason codes.
const (
	ReasonMissingAmount      FailureReason = "missing_amount"
	ReasonMalformedAmount    FailureReason = "malformed_amount"
	ReasonAmbiguousDirection FailureReason = "ambiguous_direction"
	ReasonLowConfidence      FailureReason = "low_confidence"
)

// ExtractedFields holds every field a strategy resolved from a message.
// Amount and Direction are mandatory; the rest are best-effort.
type ExtractedFields struct {
	OccurredAt         time.Time
	Bank               BankID
	Direction          Direction
	AccountSuffix      string
	Merchant           string
	Amount             decimal.Decimal
	Balance            *decimal.Decimal
	Confidence         float64
	OccurredAtInferred bool // true when OccurredAt fell back to receipt time
}

// ExtractionResult is the discriminated outcome of field extraction: either
// a full set of fields or a reason why none could be produced.
type ExtractionResult struct {
	Fields  ExtractedFields
	Reason  FailureReason
	Matched bool
}

// MatchedResult wraps successfully extracted fields.
func MatchedResult(fields ExtractedFields) ExtractionResult {
	return ExtractionResult{Matched: true, Fields: fields}
}

// UnmatchedResult records an extraction failure with its reason code.
func UnmatchedResult(reason FailureReason) ExtractionResult {
	return ExtractionResult{Matched: false, Reason: reason}
}
