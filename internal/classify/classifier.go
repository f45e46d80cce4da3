// Package classify maps merchant text to a spending category using ordered
// keyword rules supplied by the category catalog.
package classify

import (
	"sort"
	"strings"

	"github.com/fintrail/fintrail/internal/model"
)

type compiledRule struct {
	category string
	ruleType model.CategoryType
	keywords []string
	priority int
}

// Classifier evaluates category rules in priority order. It never fails:
// a merchant matching no rule lands in Uncategorized.
type Classifier struct {
	rules []compiledRule
}

// New creates a classifier from catalog rules. Inactive rules are dropped,
// keywords are lower-cased once, and rules are ordered by priority (highest
// first, stable) so the first match wins deterministically.
func New(rules []model.CategoryRule) *Classifier {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		if !rule.IsActive || len(rule.Keywords) == 0 {
			continue
		}
		keywords := make([]string, 0, len(rule.Keywords))
		for _, keyword := range rule.Keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		compiled = append(compiled, compiledRule{
			category: rule.Category,
			ruleType: rule.Type,
			keywords: keywords,
			priority: rule.Priority,
		})
	}
	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].priority > compiled[j].priority
	})
	return &Classifier{rules: compiled}
}

// Classify returns the category for a merchant/description string. The rule
// set is constrained by direction: income-only rules are not eligible for
// debits and vice versa.
func (c *Classifier) Classify(merchantText string, direction model.Direction) string {
	lower := strings.ToLower(merchantText)

	for _, rule := range c.rules {
		if !eligible(rule.ruleType, direction) {
			continue
		}
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return model.Uncategorized
}

func eligible(ruleType model.CategoryType, direction model.Direction) bool {
	switch ruleType {
	case model.CategoryTypeIncome:
		return direction == model.DirectionCredit
	case model.CategoryTypeExpense:
		return direction == model.DirectionDebit
	}
	return false
}
