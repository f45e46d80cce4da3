package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		ID:       "txn-1",
		Type:     TypeExpense,
		Amount:   decimal.NewFromInt(250),
		Currency: "INR",
		Category: Uncategorized,
		Source:   SourceAuto,
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr bool
	}{
		{"valid", func(*Transaction) {}, false},
		{"zero amount", func(txn *Transaction) { txn.Amount = decimal.Zero }, true},
		{"negative amount", func(txn *Transaction) { txn.Amount = decimal.NewFromInt(-1) }, true},
		{"bad type", func(txn *Transaction) { txn.Type = "transfer" }, true},
		{"bad source", func(txn *Transaction) { txn.Source = "import" }, true},
		{"missing category", func(txn *Transaction) { txn.Category = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validTransaction()
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDirection_TransactionType(t *testing.T) {
	assert.Equal(t, TypeExpense, DirectionDebit.TransactionType())
	assert.Equal(t, TypeIncome, DirectionCredit.TransactionType())
}
