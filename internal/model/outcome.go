package model

// OutcomeStatus discriminates the three terminal pipeline results.
type OutcomeStatus string

// Pipeline outcome constants.
const (
	OutcomeCreated   OutcomeStatus = "created"
	OutcomeDuplicate OutcomeStatus = "duplicate"
	OutcomeFailed    OutcomeStatus = "failed"
)

// PipelineOutcome is the single result type returned by the engine.
// Exactly one of Transaction or Failure is set, per Status.
type PipelineOutcome struct {
	Transaction *Transaction
	Failure     *ClassificationFailure
	Status      OutcomeStatus
}

// CreatedOutcome wraps a newly produced transaction.
func CreatedOutcome(txn *Transaction) PipelineOutcome {
	return PipelineOutcome{Status: OutcomeCreated, Transaction: txn}
}

// DuplicateOutcome marks a message already ingested under the same fingerprint.
func DuplicateOutcome() PipelineOutcome {
	return PipelineOutcome{Status: OutcomeDuplicate}
}

// FailedOutcome wraps a classification failure routed to manual resolution.
func FailedOutcome(failure *ClassificationFailure) PipelineOutcome {
	return PipelineOutcome{Status: OutcomeFailed, Failure: failure}
}
