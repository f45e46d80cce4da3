package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is an expense or income.
type TransactionType string

// Transaction type constants.
const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// TransactionSource indicates how a transaction record was produced.
type TransactionSource string

const (
	// SourceAuto marks transactions extracted automatically from a message.
	SourceAuto TransactionSource = "auto"
	// SourceManual marks transactions created by resolving a failure by hand.
	SourceManual TransactionSource = "manual"
)

// Direction is the money-flow direction extracted from a message.
type Direction string

// Direction constants.
const (
	DirectionDebit   Direction = "debit"
	DirectionCredit  Direction = "credit"
	DirectionUnknown Direction = "unknown"
)

// TransactionType maps a resolved direction to its transaction type.
// Calling this on DirectionUnknown is a contract violation.
func (d Direction) TransactionType() TransactionType {
	if d == DirectionCredit {
		return TypeIncome
	}
	return TypeExpense
}

// Transaction is a structured financial transaction produced by the pipeline.
// Amount is always non-negative; the sign is carried by Type, never by a
// negative amount.
type Transaction struct {
	OccurredAt    time.Time
	ID            string
	Type          TransactionType
	Category      string
	Merchant      string
	AccountSuffix string
	Currency      string
	Source        TransactionSource
	Fingerprint   Fingerprint
	RawMessage    string // original notification text kept for audit
	Sender        string
	Amount        decimal.Decimal
	Balance       *decimal.Decimal // running balance if the message carried one
	Confidence    float64
}

// Validate ensures the transaction satisfies the engine's output contract.
func (t *Transaction) Validate() error {
	if t.Amount.Sign() <= 0 {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Type != TypeExpense && t.Type != TypeIncome {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	if t.Source != SourceAuto && t.Source != SourceManual {
		return fmt.Errorf("invalid transaction source %q", t.Source)
	}
	if t.Category == "" {
		return fmt.Errorf("transaction category is required")
	}
	return nil
}
