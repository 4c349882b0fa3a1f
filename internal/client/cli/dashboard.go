package cli

import (
	"context"
	"fmt"
)

// ShowDashboard fetches fresh data and prints every aggregate view.
func (a *App) ShowDashboard(ctx context.Context) error {
	data, err := a.dashboard.Fetch(ctx)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Summary")
	printlnFn(fmt.Sprintf("  income   %.2f", data.Summary.TotalIncome))
	printlnFn(fmt.Sprintf("  expenses %.2f", data.Summary.TotalExpenses))
	printlnFn(fmt.Sprintf("  balance  %.2f", data.Summary.RemainingBalance))

	if len(data.CategoryExpenses) > 0 {
		printlnFn("Expenses by category")
		for _, ce := range data.CategoryExpenses {
			printlnFn(fmt.Sprintf("  %-12s %.2f", ce.Category, ce.Amount))
		}
	}

	if len(data.MonthlyTrends) > 0 {
		printlnFn("Monthly trends")
		for _, mt := range data.MonthlyTrends {
			printlnFn(fmt.Sprintf("  %s  income %.2f  expenses %.2f", mt.Month, mt.Income, mt.Expenses))
		}
	}

	if len(data.BudgetComparison) > 0 {
		printlnFn("Budget vs actual")
		for _, bc := range data.BudgetComparison {
			printlnFn(fmt.Sprintf("  %-12s budgeted %.2f  spent %.2f", bc.Category, bc.Budgeted, bc.Spent))
		}
	}

	return nil
}
