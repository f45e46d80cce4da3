package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrail/fintrail/internal/model"
)

// Optional-field resolvers. Absence of any of these never fails extraction.

var suffixPattern = regexp.MustCompile(
	`(?i)(?:a/c|acct|account|card)(?:\s+(?:no\.?|number))?(?:\s+ending)?(?:\s+in)?\s*[x*]*([0-9]{3,6})`)

// FindAccountSuffix returns the trailing digits after an account/card anchor
// phrase, or "" when the message carries none.
func FindAccountSuffix(text string) string {
	if m := suffixPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

var balancePattern = regexp.MustCompile(
	`(?i)(?:(?:avl|avail|available)\.?\s+)?bal(?:ance)?\s*[:\s]\s*(?:rs\.?|inr)?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)

// FindBalance returns the running balance following a balance anchor phrase.
func FindBalance(text string) *decimal.Decimal {
	m := balancePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	balance, err := ParseAmount(m[1])
	if err != nil {
		return nil
	}
	return &balance
}

// Merchant text sits between a direction-specific anchor and the next date,
// balance, or sentence marker. Captures that are really account references
// are rejected and the next anchor is tried.
var (
	debitMerchantPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:at|towards)\s+(.+?)(?:\s+on\s+\d|\s*[.;]|\s+ref\b|$)`),
		regexp.MustCompile(`(?i)\btrf\s+to\s+(.+?)(?:\s+on\s+(?:date\s+)?\w|\s*[.;]|\s+refno\b|$)`),
		regexp.MustCompile(`(?i)\bto\s+(?:vpa\s+)?(.+?)(?:\s+on\s+\d|\s*[.;]|\s+ref\b|$)`),
	}
	creditMerchantPatterns = []*regexp.Regexp{
		regexp.MustCompile(`-\s*([^.;-]+?)\s+on\s+\d`),
		regexp.MustCompile(`(?i)\b(?:from|by)\s+(.+?)(?:\s+on\s+\d|\s*[.;]|\s+ref\b|$)`),
	}

	// Captures that are account references or amounts, not payees.
	nonMerchantPrefixes = []string{"your ", "a/c", "acct", "account", "card", "rs ", "rs.", "inr "}
)

// FindMerchant extracts the merchant/payee segment for the given direction,
// or "" when no anchor yields a plausible capture.
func FindMerchant(text string, direction model.Direction) string {
	patterns := debitMerchantPatterns
	if direction == model.DirectionCredit {
		patterns = creditMerchantPatterns
	}

	for _, pattern := range patterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := cleanMerchant(m[1])
			if candidate != "" {
				return candidate
			}
		}
	}
	return ""
}

func cleanMerchant(raw string) string {
	candidate := strings.Trim(strings.TrimSpace(raw), ".,;:-")
	if candidate == "" {
		return ""
	}
	lower := strings.ToLower(candidate)
	for _, prefix := range nonMerchantPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return ""
		}
	}
	// A bare number is an amount or reference, never a payee.
	if regexp.MustCompile(`^[0-9.,]+$`).MatchString(candidate) {
		return ""
	}
	return candidate
}

// FallbackMerchant is the generic label used when no merchant segment could
// be located.
func FallbackMerchant(direction model.Direction) string {
	if direction == model.DirectionCredit {
		return "Credit Transaction"
	}
	return "Debit Transaction"
}

// Date handling: one token pattern, a small set of known layouts per bank.

var datePattern = regexp.MustCompile(
	`(?i)\b(\d{4}-\d{2}-\d{2}|\d{1,2}[-/](?:[a-z]{3}|\d{1,2})[-/]\d{2,4}|\d{1,2}[a-z]{3}\d{2,4})\b`)

// DefaultDateFormats covers every date layout seen across the supported
// banks; bank strategies narrow this to their own formats.
var DefaultDateFormats = []string{
	"02-Jan-06",
	"02-Jan-2006",
	"02-01-06",
	"02-01-2006",
	"02/01/06",
	"02/01/2006",
	"02Jan06",
	"02Jan2006",
	"2006-01-02",
}

// ParseDateToken parses a single date token against the given layouts.
func ParseDateToken(token string, formats []string) (time.Time, bool) {
	token = strings.Trim(token, ".,;:")
	for _, format := range formats {
		if ts, err := time.Parse(format, token); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// FindDate locates and parses an embedded date token. The second return is
// false when the message carries no parseable date, in which case the caller
// falls back to the message receipt time.
func FindDate(text string, formats []string) (time.Time, bool) {
	for _, m := range datePattern.FindAllStringSubmatch(text, -1) {
		if ts, ok := ParseDateToken(m[1], formats); ok {
			return ts, true
		}
	}
	return time.Time{}, false
}
