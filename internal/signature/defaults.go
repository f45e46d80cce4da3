package signature

import "github.com/fintrail/fintrail/internal/model"

// DefaultRules returns the built-in signature rule set. Card-product rules
// sit above their bank's account rules, which sit above anything keyed only
// on generic wording, preserving the specific-before-generic ordering.
// Adding a new bank means appending a rule here plus an extraction strategy;
// existing rules and priorities stay untouched.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "hdfc-credit-card",
			Bank:     model.BankHDFC,
			Anchors:  []string{"hdfc bank credit card"},
			Priority: 100,
		},
		{
			Name:           "hdfc-account",
			Bank:           model.BankHDFC,
			SenderContains: []string{"HDFCBK", "HDFCBN"},
			Anchors:        []string{"hdfc bank"},
			Priority:       90,
		},
		{
			Name:           "sbi-upi",
			Bank:           model.BankSBI,
			SenderContains: []string{"SBIUPI"},
			Anchors:        []string{"dear upi user"},
			Priority:       95,
		},
		{
			Name:           "sbi-account",
			Bank:           model.BankSBI,
			SenderContains: []string{"SBIINB", "SBIPSG", "CBSSBI"},
			Anchors:        []string{"sbi"},
			Priority:       85,
		},
		{
			Name:           "icici-account",
			Bank:           model.BankICICI,
			SenderContains: []string{"ICICIB"},
			Anchors:        []string{"icici bank"},
			Priority:       90,
		},
		{
			Name:           "axis-account",
			Bank:           model.BankAxis,
			SenderContains: []string{"AXISBK"},
			Anchors:        []string{"axis bank"},
			Priority:       90,
		},
	}
}
