package planner

import (
	"strings"
)

// Expense categories.
const (
	CategoryFoodDining    = "Food & Dining"
	CategoryTransport     = "Transportation"
	CategoryGroceries     = "Groceries"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills & Utilities"
	CategoryRent          = "Rent/Mortgage"
	CategoryEntertainment = "Entertainment"
	CategoryHealthcare    = "Healthcare"
	CategoryOther         = "Other"
)

// Income categories.
const (
	CategorySalary      = "Salary"
	CategoryBusiness    = "Business Income"
	CategoryFreelance   = "Freelance"
	CategoryInvestment  = "Investment Returns"
	CategoryRental      = "Rental Income"
	CategoryOtherIncome = "Other Income"
)

type keywordRule struct {
	category string
	keywords []string
}

// Rules are checked in order; the first rule with a keyword contained in the
// lower-cased description wins. Groceries sits before Shopping so that
// "grocery store" is not swallowed by the "store" keyword.
var expenseRules = []keywordRule{
	{CategoryFoodDining, []string{"food", "restaurant", "dining", "swiggy", "zomato", "cafe", "pizza", "burger"}},
	{CategoryTransport, []string{"uber", "ola", "taxi", "bus", "metro", "fuel", "petrol", "diesel", "transport"}},
	{CategoryGroceries, []string{"grocery", "supermarket", "vegetables", "fruits", "milk"}},
	{CategoryShopping, []string{"shopping", "mall", "amazon", "flipkart", "store", "purchase"}},
	{CategoryBills, []string{"electricity", "water", "gas", "internet", "mobile", "recharge", "bill"}},
	{CategoryRent, []string{"rent", "mortgage", "emi", "apartment", "house"}},
	{CategoryEntertainment, []string{"movie", "netflix", "spotify", "game", "entertainment", "subscription"}},
	{CategoryHealthcare, []string{"medical", "doctor", "hospital", "pharmacy", "medicine", "health"}},
}

var incomeRules = []keywordRule{
	{CategorySalary, []string{"salary", "payroll", "wage", "company"}},
	{CategoryBusiness, []string{"business", "profit", "revenue"}},
	{CategoryFreelance, []string{"freelance", "contract", "project"}},
	{CategoryInvestment, []string{"dividend", "interest", "investment", "mutual fund"}},
	{CategoryRental, []string{"rent", "rental"}},
}

// CategorizeExpense maps a debit description to an expense category.
func CategorizeExpense(description string) string {
	return match(expenseRules, description, CategoryOther)
}

// CategorizeIncome maps a credit description to an income category.
func CategorizeIncome(description string) string {
	return match(incomeRules, description, CategoryOtherIncome)
}

func match(rules []keywordRule, description, fallback string) string {
	lowered := strings.ToLower(description)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.category
			}
		}
	}
	return fallback
}
