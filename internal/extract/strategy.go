package extract

import (
	"regexp"
	"time"

	"github.com/fintrail/fintrail/internal/model"
)

// Confidence policy. Each strategy carries a base confidence; resolving an
// optional field through a fallback deducts from it. The engine routes
// results below its threshold to the manual queue.
const (
	confidenceBankTemplate = 0.95
	confidenceGeneric      = 0.60

	merchantFallbackPenalty  = 0.15
	timestampFallbackPenalty = 0.05
)

// Strategy attempts to extract fields from one known message sub-format.
// A strategy with a Template only applies when the template matches; the
// keyword strategy (nil Template) applies to anything and is always last.
// Template groups: amount, verb, suffix, merchant, balance, date. All are
// optional except amount and verb; missing groups fall back to the keyword
// resolvers.
type Strategy struct {
	Template       *regexp.Regexp
	Name           string
	Bank           model.BankID
	DateFormats    []string
	BaseConfidence float64
}

// apply runs the strategy against canonical text. The second return reports
// whether the strategy considered itself applicable: an inapplicable
// template lets the next strategy try, while an applicable one returns a
// definitive result, matched or not.
func (s *Strategy) apply(msg model.InboundMessage, text string) (model.ExtractionResult, bool) {
	groups := map[string]string{}
	if s.Template != nil {
		m := s.Template.FindStringSubmatch(text)
		if m == nil {
			return model.ExtractionResult{}, false
		}
		for i, name := range s.Template.SubexpNames() {
			if name != "" && i < len(m) && m[i] != "" {
				groups[name] = m[i]
			}
		}
	}

	confidence := s.BaseConfidence

	// Amount: mandatory. A template hit with a garbled number is a
	// definitive malformed_amount, not a reason to try other strategies.
	token, ok := groups["amount"]
	if !ok {
		token, ok = FindAmountToken(text)
		if !ok {
			return model.UnmatchedResult(model.ReasonMissingAmount), true
		}
	}
	amount, err := ParseAmount(token)
	if err != nil {
		return model.UnmatchedResult(model.ReasonMalformedAmount), true
	}

	// Direction: mandatory, never guessed.
	direction := model.DirectionUnknown
	if verb, found := groups["verb"]; found {
		direction = DirectionForVerb(verb)
	}
	if direction == model.DirectionUnknown {
		direction = ScanDirection(text)
	}
	if direction == model.DirectionUnknown {
		return model.UnmatchedResult(model.ReasonAmbiguousDirection), true
	}

	fields := model.ExtractedFields{
		Bank:      s.Bank,
		Amount:    amount,
		Direction: direction,
	}

	// Remaining fields are best-effort.
	if suffix, found := groups["suffix"]; found {
		fields.AccountSuffix = suffix
	} else {
		fields.AccountSuffix = FindAccountSuffix(text)
	}

	merchant := groups["merchant"]
	if merchant != "" {
		merchant = cleanMerchant(merchant)
	}
	if merchant == "" {
		merchant = FindMerchant(text, direction)
	}
	if merchant == "" {
		merchant = FallbackMerchant(direction)
		confidence -= merchantFallbackPenalty
	}
	fields.Merchant = merchant

	if balanceToken, found := groups["balance"]; found {
		if balance, balErr := ParseAmount(balanceToken); balErr == nil {
			fields.Balance = &balance
		}
	}
	if fields.Balance == nil {
		fields.Balance = FindBalance(text)
	}

	formats := s.DateFormats
	if len(formats) == 0 {
		formats = DefaultDateFormats
	}
	occurredAt, found := time.Time{}, false
	if dateToken, hasDate := groups["date"]; hasDate {
		occurredAt, found = ParseDateToken(dateToken, formats)
	}
	if !found {
		occurredAt, found = FindDate(text, formats)
	}
	if !found {
		occurredAt = msg.ReceivedAt
		fields.OccurredAtInferred = true
		confidence -= timestampFallbackPenalty
	}
	fields.OccurredAt = occurredAt

	fields.Confidence = confidence
	return model.MatchedResult(fields), true
}
