package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fintrail/fintrail/internal/model"
)

func TestMatcher_Identify(t *testing.T) {
	m := NewMatcher(DefaultRules())

	tests := []struct {
		name       string
		sender     string
		text       string
		wantBank   model.BankID
		wantsMatch bool
	}{
		{
			name:       "sender hint wins without anchors",
			sender:     "VM-HDFCBK",
			text:       "Rs 250.00 debited from your account",
			wantBank:   model.BankHDFC,
			wantsMatch: true,
		},
		{
			name:       "anchor phrase without sender hint",
			sender:     "+919876543210",
			text:       "ICICI Bank Acct XX123 debited for Rs 250.00 on 25-Jul-25",
			wantBank:   model.BankICICI,
			wantsMatch: true,
		},
		{
			name:       "sbi upi sender",
			sender:     "AD-SBIUPI",
			text:       "Dear UPI user A/C X1234 debited by 250.0 on date 25Jul25",
			wantBank:   model.BankSBI,
			wantsMatch: true,
		},
		{
			name:       "axis anchor",
			sender:     "unknown",
			text:       "INR 250.00 debited from A/c no. XX1234 - Axis Bank",
			wantBank:   model.BankAxis,
			wantsMatch: true,
		},
		{
			name:       "no signature falls through to generic",
			sender:     "+91XXXXXXXXXX",
			text:       "Rs 250.00 debited from your account ending 1234 at STARBUCKS",
			wantBank:   model.BankGeneric,
			wantsMatch: false,
		},
		{
			name:       "otp message matches nothing",
			sender:     "VK-PROMOS",
			text:       "Your OTP is 493021, do not share with anyone",
			wantBank:   model.BankGeneric,
			wantsMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank, matched := m.Identify(tt.sender, tt.text)
			assert.Equal(t, tt.wantBank, bank)
			assert.Equal(t, tt.wantsMatch, matched)
		})
	}
}

func TestMatcher_SpecificBeforeGeneric(t *testing.T) {
	// A message matching both the card-product rule and the bank's
	// generic account rule must resolve via the specific one.
	m := NewMatcher([]Rule{
		{Name: "bank-generic", Bank: "bank-account", Anchors: []string{"example bank"}, Priority: 50},
		{Name: "bank-card", Bank: "bank-card", Anchors: []string{"example bank credit card"}, Priority: 100},
	})

	bank, matched := m.Identify("", "example bank credit card spent Rs 100")
	assert.True(t, matched)
	assert.Equal(t, model.BankID("bank-card"), bank)

	// Order in the slice must not matter, only priority.
	bank, matched = m.Identify("", "example bank account debited Rs 100")
	assert.True(t, matched)
	assert.Equal(t, model.BankID("bank-account"), bank)
}

func TestMatcher_AllAnchorsRequired(t *testing.T) {
	m := NewMatcher([]Rule{
		{Name: "two-anchors", Bank: model.BankHDFC, Anchors: []string{"hdfc bank", "credit card"}, Priority: 10},
	})

	_, matched := m.Identify("", "hdfc bank account debited")
	assert.False(t, matched, "rule must not fire with only one of two anchors")

	bank, matched := m.Identify("", "hdfc bank credit card spent")
	assert.True(t, matched)
	assert.Equal(t, model.BankHDFC, bank)
}
