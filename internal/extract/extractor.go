// Package extract resolves structured transaction fields from canonical
// notification text using ordered, bank-specific extraction strategies.
package extract

import (
	"log/slog"

	"github.com/fintrail/fintrail/internal/model"
)

// Extractor dispatches canonical text to the strategy list for its bank,
// falling back to generic keyword strategies. It is pure and safe for
// concurrent use.
type Extractor struct {
	strategies map[model.BankID][]Strategy
	generic    []Strategy
}

// New creates an extractor with the built-in strategy table.
func New() *Extractor {
	return NewWithStrategies(DefaultStrategies(), genericStrategies())
}

// NewWithStrategies creates an extractor with a custom strategy table.
func NewWithStrategies(strategies map[model.BankID][]Strategy, generic []Strategy) *Extractor {
	return &Extractor{strategies: strategies, generic: generic}
}

// Extract attempts each of the bank's strategies in order, then the generic
// strategies. The first applicable strategy decides the outcome: a matched
// set of fields, or a failure reason (missing_amount, malformed_amount,
// ambiguous_direction). The keyword strategy is always applicable, so every
// call returns a definitive result.
func (e *Extractor) Extract(msg model.InboundMessage, canonicalText string, bank model.BankID) model.ExtractionResult {
	for _, strategy := range e.strategies[bank] {
		result, applicable := strategy.apply(msg, canonicalText)
		if !applicable {
			continue
		}
		logStrategyResult(strategy.Name, result)
		return result
	}

	for _, strategy := range e.generic {
		result, applicable := strategy.apply(msg, canonicalText)
		if !applicable {
			continue
		}
		logStrategyResult(strategy.Name, result)
		return result
	}

	return model.UnmatchedResult(model.ReasonMissingAmount)
}

func logStrategyResult(name string, result model.ExtractionResult) {
	if result.Matched {
		slog.Debug("extraction matched",
			"strategy", name,
			"bank", result.Fields.Bank,
			"direction", result.Fields.Direction,
			"confidence", result.Fields.Confidence)
		return
	}
	slog.Debug("extraction unmatched", "strategy", name, "reason", result.Reason)
}
