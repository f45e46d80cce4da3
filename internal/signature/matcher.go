// Package signature identifies which bank/format family produced a message,
// using an ordered list of signature rules over sender identity hints and
// fixed phrase anchors.
package signature

import (
	"sort"
	"strings"

	"github.com/fintrail/fintrail/internal/model"
)

// Rule is a predicate identifying one bank message format. A rule matches
// when either a sender prefix hits or every anchor phrase is present in the
// canonical text. Rules are evaluated in priority order, highest first, so
// specific formats must carry a higher priority than generic ones.
type Rule struct {
	Name           string
	Bank           model.BankID
	SenderContains []string // uppercase sender-ID fragments, e.g. "HDFCBK"
	Anchors        []string // lowercase phrases that must all be present
	Priority       int
}

// Matcher evaluates signature rules in a fixed priority order.
type Matcher struct {
	rules []Rule
}

// NewMatcher creates a matcher over the given rules. The slice is copied and
// sorted by priority (highest first); ties keep their original order so that
// appending a new rule never reshuffles existing ones.
func NewMatcher(rules []Rule) *Matcher {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return &Matcher{rules: sorted}
}

// Identify returns the bank that produced the message. The first matching
// rule wins. When no rule matches it returns BankGeneric and false, which
// routes the message to the generic extraction strategies downstream.
func (m *Matcher) Identify(sender, canonicalText string) (model.BankID, bool) {
	upperSender := strings.ToUpper(sender)
	lowerText := strings.ToLower(canonicalText)

	for _, rule := range m.rules {
		if rule.matches(upperSender, lowerText) {
			return rule.Bank, true
		}
	}
	return model.BankGeneric, false
}

func (r *Rule) matches(upperSender, lowerText string) bool {
	for _, fragment := range r.SenderContains {
		if fragment != "" && strings.Contains(upperSender, fragment) {
			return true
		}
	}

	if len(r.Anchors) == 0 {
		return false
	}
	for _, anchor := range r.Anchors {
		if !strings.Contains(lowerText, anchor) {
			return false
		}
	}
	return true
}
