package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	thirty     = decimal.NewFromInt(30)
	twentyFive = decimal.NewFromInt(25)
	twenty     = decimal.NewFromInt(20)
	fifteen    = decimal.NewFromInt(15)
	ten        = decimal.NewFromInt(10)
)

// HealthScore is a 0-100 rating of savings, income diversity and spending.
type HealthScore struct {
	Score int
	Grade string
}

// HealthScore rates the analysis: up to 40 points for the savings rate, 20
// for the number of income sources and 40 for the expense to income ratio.
func (a Analysis) HealthScore() HealthScore {
	score := 0

	switch {
	case a.SavingsRate.GreaterThanOrEqual(thirty):
		score += 40
	case a.SavingsRate.GreaterThanOrEqual(twenty):
		score += 30
	case a.SavingsRate.GreaterThanOrEqual(ten):
		score += 20
	default:
		score += 10
	}

	switch sources := len(a.IncomeBreakdown); {
	case sources >= 3:
		score += 20
	case sources == 2:
		score += 15
	default:
		score += 10
	}

	if a.TotalIncome.IsPositive() {
		ratio := a.TotalExpenses.Div(a.TotalIncome)
		switch {
		case ratio.LessThanOrEqual(decimal.RequireFromString("0.7")):
			score += 40
		case ratio.LessThanOrEqual(decimal.RequireFromString("0.8")):
			score += 30
		case ratio.LessThanOrEqual(decimal.RequireFromString("0.9")):
			score += 20
		default:
			score += 10
		}
	}

	return HealthScore{Score: score, Grade: gradeFor(score)}
}

func gradeFor(score int) string {
	switch {
	case score >= 85:
		return "A+ (Excellent)"
	case score >= 75:
		return "A (Very Good)"
	case score >= 65:
		return "B (Good)"
	case score >= 55:
		return "C (Fair)"
	default:
		return "D (Needs Improvement)"
	}
}

// Report renders the markdown budget plan for a. An analysis of zero
// transactions gets a getting-started report instead.
func Report(a Analysis, now time.Time) string {
	if a.TransactionCount == 0 {
		return emptyReport()
	}

	b := &strings.Builder{}
	b.WriteString("# Your AI-Generated Budget Report\n\n")

	b.WriteString("## Financial Summary\n")
	fmt.Fprintf(b, "- **Total Income**: %s\n", rupees(a.TotalIncome))
	fmt.Fprintf(b, "- **Total Expenses**: %s\n", rupees(a.TotalExpenses))
	fmt.Fprintf(b, "- **Net Savings**: %s\n", rupees(a.NetSavings))
	fmt.Fprintf(b, "- **Savings Rate**: %s%%\n", a.SavingsRate.StringFixed(1))
	fmt.Fprintf(b, "- **Transactions Analyzed**: %d\n\n", a.TransactionCount)

	b.WriteString("## Budget Recommendations (50/30/20 Rule)\n")
	fmt.Fprintf(b, "- **Needs (50%%)**: %s\n", rupees(a.NeedsBudget))
	fmt.Fprintf(b, "- **Wants (30%%)**: %s\n", rupees(a.WantsBudget))
	fmt.Fprintf(b, "- **Savings (20%%)**: %s\n\n", rupees(a.SavingsBudget))

	b.WriteString("## Personalized Insights\n")
	for i, insight := range a.Insights() {
		fmt.Fprintf(b, "%d. %s\n", i+1, insight)
	}
	b.WriteString("\n")

	b.WriteString("## Income Breakdown\n")
	for _, line := range a.IncomeBreakdown {
		fmt.Fprintf(b, "- **%s**: %s (%s%% of total income)\n", line.Category, rupees(line.Amount), a.ShareOfIncome(line.Amount).StringFixed(1))
	}
	b.WriteString("\n")

	b.WriteString("## Expense Breakdown\n")
	for _, line := range a.ExpenseBreakdown {
		fmt.Fprintf(b, "- **%s**: %s (%s%% of income)\n", line.Category, rupees(line.Amount), a.ShareOfIncome(line.Amount).StringFixed(1))
	}
	b.WriteString("\n")

	b.WriteString("## Action Items\n")
	for _, action := range a.ActionItems() {
		fmt.Fprintf(b, "- %s\n", action)
	}
	b.WriteString("\n")

	health := a.HealthScore()
	b.WriteString("## Financial Health Score\n")
	fmt.Fprintf(b, "**Score**: %d/100 - Grade %s\n\n", health.Score, health.Grade)

	b.WriteString("---\n")
	fmt.Fprintf(b, "*Generated by AI Budget Planner on %s*\n", now.Format("2006-01-02 15:04:05"))

	return b.String()
}

// Insights are short observations on savings, the largest expense and
// income diversity.
func (a Analysis) Insights() []string {
	rate := a.SavingsRate.StringFixed(1)
	var insights []string

	switch {
	case a.SavingsRate.GreaterThanOrEqual(thirty):
		insights = append(insights, fmt.Sprintf("Excellent! Your savings rate of %s%% is outstanding. You're building wealth effectively.", rate))
	case a.SavingsRate.GreaterThanOrEqual(twenty):
		insights = append(insights, fmt.Sprintf("Great job! Your savings rate of %s%% meets the recommended 20%% target.", rate))
	case a.SavingsRate.GreaterThanOrEqual(ten):
		insights = append(insights, fmt.Sprintf("Your savings rate of %s%% is below the recommended 20%%. Consider reducing expenses.", rate))
	default:
		insights = append(insights, fmt.Sprintf("Your savings rate of %s%% needs immediate attention. Focus on expense reduction.", rate))
	}

	if len(a.ExpenseBreakdown) > 0 {
		top := a.ExpenseBreakdown[0]
		share := a.ShareOfIncome(top.Amount)
		if share.GreaterThan(thirty) {
			insights = append(insights, fmt.Sprintf("Your highest expense category is %s at %s (%s%% of income). Consider optimizing this area.",
				top.Category, rupees(top.Amount), share.StringFixed(1)))
		} else {
			insights = append(insights, fmt.Sprintf("Your expense distribution looks balanced with %s being your highest category at %s%% of income.",
				top.Category, share.StringFixed(1)))
		}
	}

	switch sources := len(a.IncomeBreakdown); {
	case sources == 1:
		insights = append(insights, "Consider diversifying your income sources to reduce financial risk.")
	case sources >= 3:
		insights = append(insights, "Great job diversifying your income sources! This provides good financial stability.")
	}

	return insights
}

// ActionItems are concrete recommendations; there is always at least one.
func (a Analysis) ActionItems() []string {
	var actions []string

	if a.SavingsRate.LessThan(targetSavings) {
		shortfall := a.SavingsBudget.Sub(a.NetSavings)
		actions = append(actions, fmt.Sprintf("**Priority**: Increase savings by %s per month to reach 20%% target", rupees(shortfall)))
	}

	for _, line := range a.ExpenseBreakdown {
		share := a.ShareOfIncome(line.Amount)
		switch {
		case line.Category == CategoryFoodDining && share.GreaterThan(fifteen):
			actions = append(actions, fmt.Sprintf("**Optimize**: Food expenses are %s%% of income. Try cooking more at home", share.StringFixed(1)))
		case line.Category == CategoryEntertainment && share.GreaterThan(ten):
			actions = append(actions, fmt.Sprintf("**Review**: Entertainment expenses are high at %s%% of income", share.StringFixed(1)))
		case line.Category == CategoryShopping && share.GreaterThan(ten):
			actions = append(actions, fmt.Sprintf("**Control**: Shopping expenses are %s%% of income. Create a shopping budget", share.StringFixed(1)))
		}
	}

	if a.SavingsRate.GreaterThanOrEqual(twentyFive) {
		actions = append(actions, "**Invest**: Your high savings rate allows for investment opportunities")
	}

	if len(actions) == 0 {
		actions = append(actions, "**Maintain**: Your financial habits are on track. Keep up the good work!")
	}

	return actions
}

func rupees(amount decimal.Decimal) string {
	return "Rs." + humanize.Comma(amount.Round(0).IntPart())
}

func emptyReport() string {
	return `# Your AI-Generated Budget Report

## Financial Summary
- **Total Income**: Rs.0
- **Total Expenses**: Rs.0
- **Net Savings**: Rs.0
- **Savings Rate**: 0%
- **Transactions Analyzed**: 0

## Getting Started
1. Add your income transactions to track earnings
2. Record your expenses to understand spending patterns
3. Sync your bank account for automatic transaction import
4. Return here for personalized insights

## Next Steps
- Start by adding your monthly salary or income
- Record major expenses like rent, groceries, and utilities
- Use the bank sync feature to import existing transactions
- Check back weekly for updated insights
`
}
