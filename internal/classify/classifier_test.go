package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fintrail/fintrail/internal/model"
)

func TestClassifier_Defaults(t *testing.T) {
	c := New(DefaultRules())

	tests := []struct {
		name      string
		merchant  string
		direction model.Direction
		want      string
	}{
		{"known merchant", "STARBUCKS COFFEE", model.DirectionDebit, "FoodAndDining"},
		{"generic vocabulary", "CORNER BAKERY", model.DirectionDebit, "FoodAndDining"},
		{"ride hailing", "UBER TRIP 4821", model.DirectionDebit, "Transport"},
		{"online retail", "AMAZON PAY", model.DirectionDebit, "Shopping"},
		{"salary credit", "SALARY PAYMENT", model.DirectionCredit, "Salary"},
		{"refund credit", "REFUND ORDER 993", model.DirectionCredit, "Refunds"},
		{"no rule matches", "UNKNOWN VENDOR 42", model.DirectionDebit, model.Uncategorized},
		{"case insensitive", "swiggy instamart", model.DirectionDebit, "FoodAndDining"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.merchant, tt.direction))
		})
	}
}

func TestClassifier_DirectionConstrainsRules(t *testing.T) {
	c := New(DefaultRules())

	// An income-only keyword in a debit merchant must not classify the
	// debit as income.
	assert.Equal(t, model.Uncategorized, c.Classify("SALARY ADVANCE LTD", model.DirectionDebit))
	assert.Equal(t, model.Uncategorized, c.Classify("STARBUCKS COFFEE", model.DirectionCredit))
}

func TestClassifier_PriorityOrder(t *testing.T) {
	rules := []model.CategoryRule{
		{Category: "Generic", Type: model.CategoryTypeExpense, Priority: 10, IsActive: true, Keywords: []string{"shop"}},
		{Category: "Specific", Type: model.CategoryTypeExpense, Priority: 90, IsActive: true, Keywords: []string{"bookshop"}},
	}
	c := New(rules)

	assert.Equal(t, "Specific", c.Classify("CITY BOOKSHOP", model.DirectionDebit))
	assert.Equal(t, "Generic", c.Classify("GIFT SHOP", model.DirectionDebit))
}

func TestClassifier_InactiveRulesIgnored(t *testing.T) {
	rules := []model.CategoryRule{
		{Category: "Dormant", Type: model.CategoryTypeExpense, Priority: 100, IsActive: false, Keywords: []string{"starbucks"}},
	}
	c := New(rules)

	assert.Equal(t, model.Uncategorized, c.Classify("STARBUCKS", model.DirectionDebit))
}

func TestClassifier_EqualPriorityIsStable(t *testing.T) {
	rules := []model.CategoryRule{
		{Category: "First", Type: model.CategoryTypeExpense, Priority: 50, IsActive: true, Keywords: []string{"market"}},
		{Category: "Second", Type: model.CategoryTypeExpense, Priority: 50, IsActive: true, Keywords: []string{"market"}},
	}
	c := New(rules)

	assert.Equal(t, "First", c.Classify("NIGHT MARKET", model.DirectionDebit))
}
