// Package report is the aggregation engine: pure, synchronous derivations of
// summary, trend, and budget-status views from raw transaction and budget
// snapshots. Functions here never perform I/O, never mutate their inputs,
// and never fail; calling one twice on the same inputs yields identical
// results.
package report

import (
	"strings"

	"github.com/dmitrijs2005/mymoney/internal/client/models"
)

// Summary is the income/expense/balance rollup over a transaction list.
type Summary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// CategoryExpense is the total expense amount for one category. Category is
// the lower-cased grouping key.
type CategoryExpense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// MonthlyTrend is the income and expense total for one YYYY-MM month.
type MonthlyTrend struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// BudgetStatus is a budget annotated with computed spend for a reference
// month. Remaining is always Amount - Spent.
type BudgetStatus struct {
	models.Budget
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

// BudgetComparison pairs a budget's cap with the all-time expense total of
// its category. Category keeps the budget record's original casing.
type BudgetComparison struct {
	Category string  `json:"category"`
	Budgeted float64 `json:"budgeted"`
	Spent    float64 `json:"spent"`
}

// DashboardData bundles every derived view the dashboard renders.
type DashboardData struct {
	Summary          Summary            `json:"summary"`
	CategoryExpenses []CategoryExpense  `json:"categoryExpenses"`
	MonthlyTrends    []MonthlyTrend     `json:"monthlyTrends"`
	BudgetComparison []BudgetComparison `json:"budgetComparison"`
}

// Summarize sums transaction amounts by type. Every transaction contributes
// to exactly one of the two totals; RemainingBalance is their difference.
func Summarize(txs []models.Transaction) Summary {
	var s Summary
	for _, t := range txs {
		if t.Type == models.TypeIncome {
			s.TotalIncome += float64(t.Amount)
		} else {
			s.TotalExpenses += float64(t.Amount)
		}
	}
	s.RemainingBalance = s.TotalIncome - s.TotalExpenses
	return s
}

// CategoryExpenses groups expense transactions by lower-cased category and
// sums their amounts. Output order is the order in which each category first
// appears in the input.
func CategoryExpenses(txs []models.Transaction) []CategoryExpense {
	totals := make(map[string]int) // category -> index into result
	result := []CategoryExpense{}
	for _, t := range txs {
		if t.Type != models.TypeExpense {
			continue
		}
		key := strings.ToLower(t.Category)
		if i, ok := totals[key]; ok {
			result[i].Amount += float64(t.Amount)
			continue
		}
		totals[key] = len(result)
		result = append(result, CategoryExpense{Category: key, Amount: float64(t.Amount)})
	}
	return result
}

// MonthlyTrends groups all transactions by the YYYY-MM prefix of their date
// and sums income and expenses separately per month. Output order is the
// order in which each month first appears in the input.
func MonthlyTrends(txs []models.Transaction) []MonthlyTrend {
	index := make(map[string]int)
	result := []MonthlyTrend{}
	for _, t := range txs {
		key := t.Month()
		i, ok := index[key]
		if !ok {
			i = len(result)
			index[key] = i
			result = append(result, MonthlyTrend{Month: key})
		}
		if t.Type == models.TypeIncome {
			result[i].Income += float64(t.Amount)
		} else {
			result[i].Expenses += float64(t.Amount)
		}
	}
	return result
}

// BudgetStatuses computes spent/remaining for each budget against
// referenceMonth (YYYY-MM). Spent counts expense transactions whose category
// matches the budget's case-insensitively and whose date falls inside
// referenceMonth, not the budget's own stored month. The result is a 1:1,
// order-preserving map of the input budgets.
func BudgetStatuses(budgets []models.Budget, txs []models.Transaction, referenceMonth string) []BudgetStatus {
	result := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		var spent float64
		for _, t := range txs {
			if t.Type != models.TypeExpense {
				continue
			}
			if !strings.EqualFold(t.Category, b.Category) {
				continue
			}
			if !strings.HasPrefix(t.Date, referenceMonth) {
				continue
			}
			spent += float64(t.Amount)
		}
		result = append(result, BudgetStatus{
			Budget:    b,
			Spent:     spent,
			Remaining: float64(b.Amount) - spent,
		})
	}
	return result
}

// BuildDashboard derives every dashboard view from full transaction and
// budget snapshots. The budget comparison uses all-time category expense
// totals, not a month-scoped figure.
func BuildDashboard(txs []models.Transaction, budgets []models.Budget) DashboardData {
	categoryExpenses := CategoryExpenses(txs)

	byCategory := make(map[string]float64, len(categoryExpenses))
	for _, ce := range categoryExpenses {
		byCategory[ce.Category] = ce.Amount
	}

	comparison := make([]BudgetComparison, 0, len(budgets))
	for _, b := range budgets {
		comparison = append(comparison, BudgetComparison{
			Category: b.Category,
			Budgeted: float64(b.Amount),
			Spent:    byCategory[strings.ToLower(b.Category)],
		})
	}

	return DashboardData{
		Summary:          Summarize(txs),
		CategoryExpenses: categoryExpenses,
		MonthlyTrends:    MonthlyTrends(txs),
		BudgetComparison: comparison,
	}
}
