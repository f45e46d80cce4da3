package model

import "time"

// FailureStatus tracks a classification failure through its lifecycle.
type FailureStatus string

// Failure lifecycle states.
const (
	FailurePending   FailureStatus = "pending"
	FailureResolved  FailureStatus = "resolved"
	FailureDiscarded FailureStatus = "discarded"
)

// ClassificationFailure is a message the engine could not confidently turn
// into a transaction, held for human disposition. The engine only constructs
// these; persisting and resolving them is the caller's responsibility.
type ClassificationFailure struct {
	CreatedAt  time.Time
	ReceivedAt time.Time // receipt time of the original message
	ResolvedAt *time.Time
	ID         string
	Sender     string
	RawText    string
	Reason     FailureReason
	Status     FailureStatus
	Partial    *ExtractedFields // partial extraction state, if any was reached
}
