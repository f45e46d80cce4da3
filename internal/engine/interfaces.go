package engine

import (
	"github.com/fintrail/fintrail/internal/model"
)

// Normalizer cleans raw text into canonical form.
type Normalizer interface {
	Normalize(raw string) string
}

// BankIdentifier resolves which bank/format family produced a message.
type BankIdentifier interface {
	Identify(sender, canonicalText string) (model.BankID, bool)
}

// FieldExtractor resolves structured fields from canonical text.
type FieldExtractor interface {
	Extract(msg model.InboundMessage, canonicalText string, bank model.BankID) model.ExtractionResult
}

// CategoryClassifier maps merchant text and direction to a category name.
type CategoryClassifier interface {
	Classify(merchantText string, direction model.Direction) string
}
