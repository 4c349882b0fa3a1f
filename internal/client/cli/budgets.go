package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/mymoney/internal/client/models"
	"github.com/dmitrijs2005/mymoney/internal/client/report"
)

// AddBudget interactively defines a monthly category budget for the
// logged-in user.
func (a *App) AddBudget(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := a.promptAmount("Amount", "")
	if err != nil {
		return err
	}
	month, err := GetOptionalText(a.reader, "Month (YYYY-MM)", time.Now().Format(models.MonthLayout), os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.budgets.Create(ctx, models.NewBudget{
		UserID:   a.currentUserID(),
		Category: category,
		Amount:   amount,
		Month:    month,
	})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Budget", created.Category, "created with id", created.ID)
	return nil
}

// ListBudgets prints the user's budgets with spend, remainder, and a health
// label, all computed against the current calendar month.
func (a *App) ListBudgets(ctx context.Context) error {
	budgets, err := a.budgets.FetchAll(ctx, a.currentUserID())
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	if len(budgets) == 0 {
		printlnFn("No budgets yet")
		return nil
	}

	txs, err := a.transactions.FetchAll(ctx, a.currentUserID())
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	referenceMonth := time.Now().Format(models.MonthLayout)
	for _, s := range report.BudgetStatuses(budgets, txs, referenceMonth) {
		health := report.ClassifyHealth(s.Spent, float64(s.Budget.Amount))
		printlnFn(fmt.Sprintf("%s  %-12s %s  budget %.2f  spent %.2f  remaining %.2f  [%s]",
			s.Budget.ID, s.Budget.Category, s.Budget.Month,
			float64(s.Budget.Amount), s.Spent, s.Remaining, health.Label))
	}
	return nil
}
