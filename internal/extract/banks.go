package extract

import (
	"regexp"

	"github.com/fintrail/fintrail/internal/model"
)

// Per-bank template strategies, most specific sub-format first. Adding a
// bank means appending its strategies here and a signature rule in the
// signature package; nothing else changes.

func hdfcStrategies() []Strategy {
	return []Strategy{
		{
			Name: "hdfc-account",
			Bank: model.BankHDFC,
			Template: regexp.MustCompile(`(?i)(?:rs\.?|inr)\s*(?P<amount>[0-9][0-9.,]*)\s+(?P<verb>debited|credited|spent|withdrawn|deposited)\s+(?:from|to|on)\s+hdfc bank\s+(?:a/c|card)\s*[x*]*(?P<suffix>\d{3,6})\s+on\s+(?P<date>\S+)(?:\s+(?:to|at|from)\s+(?P<merchant>[^.]+?))?(?:\s*\.|$)`),
			DateFormats:    []string{"02-01-06", "02-01-2006", "02-Jan-06", "02-Jan-2006"},
			BaseConfidence: confidenceBankTemplate,
		},
	}
}

func sbiStrategies() []Strategy {
	return []Strategy{
		{
			Name: "sbi-upi",
			Bank: model.BankSBI,
			Template: regexp.MustCompile(`(?i)a/c\s*[x*]*(?P<suffix>\d{3,6})\s+(?P<verb>debited|credited)\s+by\s+(?:rs\.?|inr)?\s*(?P<amount>[0-9][0-9.,]*)\s+on\s+date\s+(?P<date>\S+)(?:\s+trf\s+(?:to|from)\s+(?P<merchant>.+?))?(?:\s+refno\b|\s*\.|$)`),
			DateFormats:    []string{"02Jan06", "02Jan2006"},
			BaseConfidence: confidenceBankTemplate,
		},
		{
			Name: "sbi-account",
			Bank: model.BankSBI,
			Template: regexp.MustCompile(`(?i)(?:rs\.?|inr)\s*(?P<amount>[0-9][0-9.,]*)\s+(?P<verb>debited|credited|withdrawn|deposited)\s+(?:from|to|at)\s+(?:your\s+)?(?:sbi\s+)?a/c\s*[x*]*(?P<suffix>\d{3,6})`),
			DateFormats:    []string{"02-Jan-06", "02Jan06", "02-01-06"},
			BaseConfidence: confidenceBankTemplate,
		},
	}
}

func iciciStrategies() []Strategy {
	return []Strategy{
		{
			Name: "icici-account",
			Bank: model.BankICICI,
			Template: regexp.MustCompile(`(?i)icici bank\s+acct\s*[x*]*(?P<suffix>\d{3,6})\s+(?P<verb>debited|credited)\s+(?:for|with)\s+(?:rs\.?|inr)\s*(?P<amount>[0-9][0-9.,]*)\s+on\s+(?P<date>[^\s;]+)(?:;\s*(?P<merchant>.+?)\s+(?:debited|credited))?`),
			DateFormats:    []string{"02-Jan-06", "02-Jan-2006"},
			BaseConfidence: confidenceBankTemplate,
		},
	}
}

func axisStrategies() []Strategy {
	return []Strategy{
		{
			Name: "axis-account",
			Bank: model.BankAxis,
			Template: regexp.MustCompile(`(?i)(?:rs\.?|inr)\s*(?P<amount>[0-9][0-9.,]*)\s+(?P<verb>debited|credited)\s+(?:from|to)\s+a/c\s+no\.?\s*[x*]*(?P<suffix>\d{3,6})\s+on\s+(?P<date>\S+)(?:\s+(?:at|by|to)\s+(?P<merchant>[^.]+?))?(?:\s*\.|$)`),
			DateFormats:    []string{"02-01-06", "02-01-2006", "02-Jan-06"},
			BaseConfidence: confidenceBankTemplate,
		},
	}
}

// genericStrategies is the fallback for unidentified senders and for bank
// messages whose templates have drifted: pure keyword scanning over the
// canonical text.
func genericStrategies() []Strategy {
	return []Strategy{
		{
			Name:           "generic-keyword",
			Bank:           model.BankGeneric,
			BaseConfidence: confidenceGeneric,
		},
	}
}

// DefaultStrategies returns the built-in strategy table keyed by bank.
func DefaultStrategies() map[model.BankID][]Strategy {
	return map[model.BankID][]Strategy{
		model.BankHDFC:  hdfcStrategies(),
		model.BankSBI:   sbiStrategies(),
		model.BankICICI: iciciStrategies(),
		model.BankAxis:  axisStrategies(),
	}
}
