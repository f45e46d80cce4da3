package model

import "time"

// CategoryType indicates whether a category applies to income or expenses.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
)

// Uncategorized is the fixed fallback category when no rule matches.
const Uncategorized = "Uncategorized"

// Category represents a valid spending or income category.
type Category struct {
	CreatedAt   time.Time
	Name        string
	Description string
	Type        CategoryType
	ID          int
	IsActive    bool
}

// CategoryRule maps merchant keywords to a category. Rules are evaluated in
// priority order (highest first); the first rule whose type matches the
// transaction direction and whose keywords hit wins.
type CategoryRule struct {
	CreatedAt time.Time
	Category  string
	Type      CategoryType
	Keywords  []string
	Priority  int
	ID        int
	IsActive  bool
}
