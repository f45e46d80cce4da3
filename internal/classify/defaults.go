package classify

import "github.com/fintrail/fintrail/internal/model"

// DefaultCategories returns the categories seeded into a fresh database.
func DefaultCategories() []model.Category {
	return []model.Category{
		{Name: "FoodAndDining", Description: "Restaurants, cafes, and food delivery", Type: model.CategoryTypeExpense, IsActive: true},
		{Name: "Transport", Description: "Ride hailing, fuel, and travel fares", Type: model.CategoryTypeExpense, IsActive: true},
		{Name: "Shopping", Description: "Online and offline retail", Type: model.CategoryTypeExpense, IsActive: true},
		{Name: "Utilities", Description: "Telecom, power, and household bills", Type: model.CategoryTypeExpense, IsActive: true},
		{Name: "Entertainment", Description: "Streaming, movies, and events", Type: model.CategoryTypeExpense, IsActive: true},
		{Name: "Health", Description: "Pharmacies, clinics, and hospitals", Type: model.CategoryTypeExpense, IsActive: true},
		{Name: "Rent", Description: "Housing rent payments", Type: model.CategoryTypeExpense, IsActive: true},
		{Name: "Salary", Description: "Payroll and wage credits", Type: model.CategoryTypeIncome, IsActive: true},
		{Name: "Refunds", Description: "Refunds, reversals, and cashback", Type: model.CategoryTypeIncome, IsActive: true},
		{Name: "Interest", Description: "Interest and dividend credits", Type: model.CategoryTypeIncome, IsActive: true},
	}
}

// DefaultRules returns the built-in keyword rule set for the default
// categories. Specific merchants outrank generic vocabulary.
func DefaultRules() []model.CategoryRule {
	return []model.CategoryRule{
		{Category: "FoodAndDining", Type: model.CategoryTypeExpense, Priority: 100, IsActive: true,
			Keywords: []string{"starbucks", "swiggy", "zomato", "dominos", "mcdonald", "kfc", "pizza"}},
		{Category: "FoodAndDining", Type: model.CategoryTypeExpense, Priority: 60, IsActive: true,
			Keywords: []string{"restaurant", "cafe", "coffee", "bakery", "eatery"}},
		{Category: "Transport", Type: model.CategoryTypeExpense, Priority: 100, IsActive: true,
			Keywords: []string{"uber", "ola", "rapido", "irctc", "redbus"}},
		{Category: "Transport", Type: model.CategoryTypeExpense, Priority: 60, IsActive: true,
			Keywords: []string{"petrol", "fuel", "metro", "parking", "toll"}},
		{Category: "Shopping", Type: model.CategoryTypeExpense, Priority: 100, IsActive: true,
			Keywords: []string{"amazon", "flipkart", "myntra", "ajio", "nykaa"}},
		{Category: "Shopping", Type: model.CategoryTypeExpense, Priority: 60, IsActive: true,
			Keywords: []string{"mall", "store", "mart", "bazaar"}},
		{Category: "Utilities", Type: model.CategoryTypeExpense, Priority: 100, IsActive: true,
			Keywords: []string{"airtel", "jio", "vodafone", "bsnl", "tata power"}},
		{Category: "Utilities", Type: model.CategoryTypeExpense, Priority: 60, IsActive: true,
			Keywords: []string{"electricity", "recharge", "broadband", "water bill", "gas"}},
		{Category: "Entertainment", Type: model.CategoryTypeExpense, Priority: 100, IsActive: true,
			Keywords: []string{"netflix", "spotify", "bookmyshow", "hotstar", "prime video"}},
		{Category: "Health", Type: model.CategoryTypeExpense, Priority: 100, IsActive: true,
			Keywords: []string{"apollo", "medplus", "pharmeasy", "1mg"}},
		{Category: "Health", Type: model.CategoryTypeExpense, Priority: 60, IsActive: true,
			Keywords: []string{"pharmacy", "hospital", "clinic", "diagnostic"}},
		{Category: "Rent", Type: model.CategoryTypeExpense, Priority: 80, IsActive: true,
			Keywords: []string{"rent", "nobroker", "housing"}},
		{Category: "Salary", Type: model.CategoryTypeIncome, Priority: 100, IsActive: true,
			Keywords: []string{"salary", "payroll", "wages", "stipend"}},
		{Category: "Refunds", Type: model.CategoryTypeIncome, Priority: 90, IsActive: true,
			Keywords: []string{"refund", "reversal", "cashback", "reimbursement"}},
		{Category: "Interest", Type: model.CategoryTypeIncome, Priority: 90, IsActive: true,
			Keywords: []string{"interest", "dividend"}},
	}
}
