package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbuddy-go-be/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNetBalanceMatchesTotals(t *testing.T) {
	incomes := []models.Income{
		{Title: "Lawn Mowing", Amount: dec("40.00"), Category: "gig"},
		{Title: "Tutoring", Amount: dec("60.10"), Category: "job"},
		{Title: "Allowance", Amount: dec("12.55"), Category: "allowance"},
	}
	expenses := []models.Expense{
		{Title: "Coffee", Amount: dec("5.50"), Category: "food"},
		{Title: "Game", Amount: dec("19.99"), Category: "entertainment"},
	}

	income := TotalIncome(incomes)
	spent := TotalExpenses(expenses)

	assert.True(t, dec("112.65").Equal(income), "total income = %s", income)
	assert.True(t, dec("25.49").Equal(spent), "total expenses = %s", spent)
	assert.True(t, income.Sub(spent).Equal(NetBalance(incomes, expenses)))
}

func TestNetBalanceCanGoNegative(t *testing.T) {
	expenses := []models.Expense{{Amount: dec("50.00")}}
	balance := NetBalance(nil, expenses)
	assert.True(t, balance.IsNegative())
	assert.True(t, dec("-50.00").Equal(balance))
}

func TestBudgetRemaining(t *testing.T) {
	assert.True(t, dec("12.70").Equal(BudgetRemaining(dec("200.00"), dec("187.30"))))
	// Over budget stays negative, not clamped.
	assert.True(t, dec("-30.00").Equal(BudgetRemaining(dec("200.00"), dec("230.00"))))
}

func TestGoalProgressPercent(t *testing.T) {
	goal := models.Goal{TargetAmount: dec("800.00"), CurrentAmount: dec("265.20")}
	assert.Equal(t, 33, GoalProgressPercent(goal))

	goal.CurrentAmount = dec("120.00")
	goal.TargetAmount = dec("150.00")
	assert.Equal(t, 80, GoalProgressPercent(goal))

	// Past the target the percentage keeps growing.
	goal.CurrentAmount = dec("300.00")
	assert.Equal(t, 200, GoalProgressPercent(goal))
}

func TestGoalProgressMonotonic(t *testing.T) {
	goal := models.Goal{TargetAmount: dec("500.00"), CurrentAmount: decimal.Zero}
	prev := GoalProgressPercent(goal)
	for _, step := range []string{"10.01", "49.99", "123.45", "250.00", "500.00", "750.00"} {
		goal.CurrentAmount = goal.CurrentAmount.Add(dec(step))
		cur := GoalProgressPercent(goal)
		require.GreaterOrEqual(t, cur, prev, "progress dropped at current=%s", goal.CurrentAmount)
		prev = cur
	}
}

func TestGoalProgressGuardsBadTarget(t *testing.T) {
	goal := models.Goal{TargetAmount: decimal.Zero, CurrentAmount: dec("10.00")}
	assert.Equal(t, 0, GoalProgressPercent(goal))
}

func TestRecentActivityMergesAndTruncates(t *testing.T) {
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	incomes := []models.Income{
		{Title: "i1", Amount: dec("1"), CreatedAt: base.Add(1 * time.Hour)},
		{Title: "i2", Amount: dec("2"), CreatedAt: base.Add(3 * time.Hour)},
		{Title: "i3", Amount: dec("3"), CreatedAt: base.Add(5 * time.Hour)},
	}
	expenses := []models.Expense{
		{Title: "e1", Amount: dec("1"), CreatedAt: base.Add(2 * time.Hour)},
		{Title: "e2", Amount: dec("2"), CreatedAt: base.Add(4 * time.Hour)},
		{Title: "e3", Amount: dec("3"), CreatedAt: base.Add(6 * time.Hour)},
	}

	items := RecentActivity(incomes, expenses, 5)
	require.Len(t, items, 5)

	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	assert.Equal(t, []string{"e3", "i3", "e2", "i2", "e1"}, titles)
}

func TestRecentActivityTiesKeepInputOrder(t *testing.T) {
	at := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	incomes := []models.Income{{Title: "income-first", Amount: dec("1"), CreatedAt: at}}
	expenses := []models.Expense{{Title: "expense-second", Amount: dec("1"), CreatedAt: at}}

	items := RecentActivity(incomes, expenses, 5)
	require.Len(t, items, 2)
	assert.Equal(t, "income-first", items[0].Title)
	assert.Equal(t, "expense-second", items[1].Title)
}

func TestSpentInMonth(t *testing.T) {
	expenses := []models.Expense{
		{Amount: dec("10.00"), CreatedAt: time.Date(2026, 8, 1, 0, 30, 0, 0, time.UTC)},
		{Amount: dec("20.00"), CreatedAt: time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)},
		{Amount: dec("99.00"), CreatedAt: time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)},
	}
	spent := SpentInMonth(expenses, 2026, time.August, time.UTC)
	assert.True(t, dec("30.00").Equal(spent), "month spend = %s", spent)
}
