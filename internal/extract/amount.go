package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount tokens are located adjacent to a currency marker first, then after
// an amount keyword. The token pattern is deliberately loose so that a
// garbled number is still captured and surfaces as malformed_amount instead
// of silently matching nothing.
var (
	currencyAmountPattern = regexp.MustCompile(`(?i)(?:rs\.?|inr)\s*([0-9][0-9.,]*)`)
	keywordAmountPattern  = regexp.MustCompile(`(?i)(?:amount(?:\s+of)?|amt\.?)[:\s]+(?:rs\.?|inr)?\s*([0-9][0-9.,]*)`)
)

// FindAmountToken returns the first numeric token adjacent to a currency
// marker or amount keyword. The token is raw: thousands separators and
// trailing sentence punctuation are still attached.
func FindAmountToken(text string) (string, bool) {
	if m := currencyAmountPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := keywordAmountPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// ParseAmount parses a raw amount token into a positive decimal. Thousands
// separators are stripped and trailing sentence punctuation trimmed before
// parsing. A token that still fails to parse, or parses to zero or less,
// is malformed.
func ParseAmount(token string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(token, ",", "")
	cleaned = strings.TrimRight(cleaned, ".")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("malformed amount %q: %w", token, err)
	}
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("amount %q is not positive", token)
	}
	return amount, nil
}
