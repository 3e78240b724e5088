// Package planner analyzes a user's transactions and writes the budget plan
// report served by the demo backend.
package planner

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types as reported by the account aggregator.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

var (
	hundred       = decimal.NewFromInt(100)
	needsShare    = decimal.RequireFromString("0.5")
	wantsShare    = decimal.RequireFromString("0.3")
	savingsShare  = decimal.RequireFromString("0.2")
	targetSavings = decimal.NewFromInt(20)
)

// Transaction is one account movement. Debits usually carry a negative amount.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Type        string
}

// CategoryTotal is one line of a breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// Analysis is the aggregate view of a set of transactions. SavingsRate is a
// percentage of income and is zero when there is no income.
type Analysis struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetSavings       decimal.Decimal
	SavingsRate      decimal.Decimal
	IncomeBreakdown  []CategoryTotal
	ExpenseBreakdown []CategoryTotal
	NeedsBudget      decimal.Decimal
	WantsBudget      decimal.Decimal
	SavingsBudget    decimal.Decimal
	TransactionCount int
}

// IsIncome reports whether tx moves money in. An explicit type wins; without
// one the sign of the amount decides.
func (tx Transaction) IsIncome() bool {
	switch tx.Type {
	case TypeCredit:
		return true
	case TypeDebit:
		return false
	default:
		return tx.Amount.IsPositive()
	}
}

// Analyze categorizes and totals transactions. Breakdowns are sorted by
// descending amount, then by name.
func Analyze(transactions []Transaction) Analysis {
	income := map[string]decimal.Decimal{}
	expenses := map[string]decimal.Decimal{}
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for _, tx := range transactions {
		amount := tx.Amount.Abs()
		if tx.IsIncome() {
			category := CategorizeIncome(tx.Description)
			income[category] = income[category].Add(amount)
			totalIncome = totalIncome.Add(amount)
			continue
		}
		category := CategorizeExpense(tx.Description)
		expenses[category] = expenses[category].Add(amount)
		totalExpenses = totalExpenses.Add(amount)
	}

	netSavings := totalIncome.Sub(totalExpenses)
	savingsRate := decimal.Zero
	if totalIncome.IsPositive() {
		savingsRate = netSavings.Div(totalIncome).Mul(hundred)
	}

	return Analysis{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		NetSavings:       netSavings,
		SavingsRate:      savingsRate,
		IncomeBreakdown:  sortedTotals(income),
		ExpenseBreakdown: sortedTotals(expenses),
		NeedsBudget:      totalIncome.Mul(needsShare),
		WantsBudget:      totalIncome.Mul(wantsShare),
		SavingsBudget:    totalIncome.Mul(savingsShare),
		TransactionCount: len(transactions),
	}
}

// ShareOfIncome is amount as a percentage of total income, zero without income.
func (a Analysis) ShareOfIncome(amount decimal.Decimal) decimal.Decimal {
	if !a.TotalIncome.IsPositive() {
		return decimal.Zero
	}
	return amount.Div(a.TotalIncome).Mul(hundred)
}

func sortedTotals(totals map[string]decimal.Decimal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		out = append(out, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Amount.Cmp(out[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}
