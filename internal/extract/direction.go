package extract

import (
	"regexp"
	"strings"

	"github.com/fintrail/fintrail/internal/model"
)

// Direction vocabulary. Only unambiguous verbs belong here: nouns like
// "credit" appear in phrases such as "credit card" on debit messages and
// would poison the scan.
var (
	debitVocab = map[string]bool{
		"debited":   true,
		"spent":     true,
		"withdrawn": true,
		"deducted":  true,
		"paid":      true,
	}
	creditVocab = map[string]bool{
		"credited":  true,
		"received":  true,
		"deposited": true,
		"refunded":  true,
	}

	wordPattern = regexp.MustCompile(`[a-z]+`)
)

// ScanDirection determines transaction direction by keyword presence. If
// both vocabularies hit, or neither does, the direction is unknown; it is
// never guessed.
func ScanDirection(text string) model.Direction {
	var sawDebit, sawCredit bool
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if debitVocab[word] {
			sawDebit = true
		}
		if creditVocab[word] {
			sawCredit = true
		}
	}

	switch {
	case sawDebit && !sawCredit:
		return model.DirectionDebit
	case sawCredit && !sawDebit:
		return model.DirectionCredit
	default:
		return model.DirectionUnknown
	}
}

// DirectionForVerb maps a single captured verb to its direction.
func DirectionForVerb(verb string) model.Direction {
	verb = strings.ToLower(verb)
	switch {
	case debitVocab[verb]:
		return model.DirectionDebit
	case creditVocab[verb]:
		return model.DirectionCredit
	default:
		return model.DirectionUnknown
	}
}
