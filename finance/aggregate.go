// Package finance holds the pure derivation logic the app computes from
// stored records: totals, budget views, goal progress, hustle streaks and
// the even-split calculator. Nothing in here touches the database.
package finance

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finbuddy-go-be/models"
)

// ActivityItem is one row of the merged recent-activity feed.
type ActivityItem struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"` // "income" or "expense"
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

// TotalIncome sums the amounts of all income records in scope.
func TotalIncome(records []models.Income) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// TotalExpenses sums the amounts of all expense records in scope.
func TotalExpenses(records []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// NetBalance is income minus expenses. May be negative.
func NetBalance(incomes []models.Income, expenses []models.Expense) decimal.Decimal {
	return TotalIncome(incomes).Sub(TotalExpenses(expenses))
}

// BudgetRemaining is the monthly budget minus what was spent. Negative
// means over budget.
func BudgetRemaining(monthlyBudget, totalSpent decimal.Decimal) decimal.Decimal {
	return monthlyBudget.Sub(totalSpent)
}

// SpentInMonth sums expenses whose creation date falls in the given
// calendar month of the given location.
func SpentInMonth(records []models.Expense, year int, month time.Month, loc *time.Location) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		y, m, _ := r.CreatedAt.In(loc).Date()
		if y == year && m == month {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// GoalProgressPercent returns the goal's completion as a whole percentage,
// rounded to the nearest integer. Values of 100 or more mean the goal is
// done. A non-positive target is a data error rejected at creation time;
// it is guarded here anyway and reported as 0.
func GoalProgressPercent(goal models.Goal) int {
	if !goal.TargetAmount.IsPositive() {
		return 0
	}
	pct := goal.CurrentAmount.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// RecentActivity merges incomes and expenses into a single feed sorted by
// creation time, newest first, truncated to limit entries. Timestamp ties
// keep their input order (incomes before expenses).
func RecentActivity(incomes []models.Income, expenses []models.Expense, limit int) []ActivityItem {
	items := make([]ActivityItem, 0, len(incomes)+len(expenses))
	for _, r := range incomes {
		items = append(items, ActivityItem{
			ID: r.ID, Type: "income", Title: r.Title,
			Amount: r.Amount, Category: r.Category, CreatedAt: r.CreatedAt,
		})
	}
	for _, r := range expenses {
		items = append(items, ActivityItem{
			ID: r.ID, Type: "expense", Title: r.Title,
			Amount: r.Amount, Category: r.Category, CreatedAt: r.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
