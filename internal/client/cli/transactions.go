package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/mymoney/internal/client/models"
)

// promptAmount reads and strictly parses a money amount. Anything that is
// not a finite number is rejected.
func (a *App) promptAmount(prompt, fallback string) (models.Amount, error) {
	raw, err := GetOptionalText(a.reader, prompt, fallback, os.Stdout)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return models.Amount(v), nil
}

func (a *App) promptTransactionFields(defaults models.Transaction) (models.Transaction, error) {
	out := defaults

	desc, err := GetOptionalText(a.reader, "Description", defaults.Description, os.Stdout)
	if err != nil {
		return out, err
	}
	out.Description = desc

	amount, err := a.promptAmount("Amount", strconv.FormatFloat(float64(defaults.Amount), 'f', -1, 64))
	if err != nil {
		return out, err
	}
	out.Amount = amount

	category, err := GetOptionalText(a.reader, "Category", defaults.Category, os.Stdout)
	if err != nil {
		return out, err
	}
	out.Category = category

	typ, err := GetOptionalText(a.reader, "Type (income/expense)", string(defaults.Type), os.Stdout)
	if err != nil {
		return out, err
	}
	out.Type = models.TransactionType(typ)

	date, err := GetOptionalText(a.reader, "Date (YYYY-MM-DD)", defaults.Date, os.Stdout)
	if err != nil {
		return out, err
	}
	out.Date = date

	return out, nil
}

// AddTransaction interactively records a new income or expense for the
// logged-in user.
func (a *App) AddTransaction(ctx context.Context) error {
	fields, err := a.promptTransactionFields(models.Transaction{
		Type: models.TypeExpense,
		Date: time.Now().Format(models.DateLayout),
	})
	if err != nil {
		return err
	}

	created, err := a.transactions.Create(ctx, models.NewTransaction{
		UserID:      a.currentUserID(),
		Amount:      fields.Amount,
		Category:    fields.Category,
		Type:        fields.Type,
		Date:        fields.Date,
		Description: fields.Description,
	})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Recorded", string(created.Type), created.Description, "with id", created.ID)
	return nil
}

// ListTransactions fetches and prints the user's transactions.
func (a *App) ListTransactions(ctx context.Context) error {
	txs, err := a.transactions.FetchAll(ctx, a.currentUserID())
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	if len(txs) == 0 {
		printlnFn("No transactions yet")
		return nil
	}
	for _, t := range txs {
		sign := "+"
		if t.Type == models.TypeExpense {
			sign = "-"
		}
		printlnFn(fmt.Sprintf("%s  %s  %s%.2f  %-12s %s", t.ID, t.Date, sign, float64(t.Amount), t.Category, t.Description))
	}
	return nil
}

// EditTransaction prompts for a transaction id and new field values. An
// empty input keeps the current value.
func (a *App) EditTransaction(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter transaction id to edit", os.Stdout)
	if err != nil {
		return err
	}

	var current *models.Transaction
	for _, t := range a.transactions.Transactions() {
		if t.ID == id {
			current = &t
			break
		}
	}
	if current == nil {
		printlnFn("Unknown transaction id:", id)
		return nil
	}

	fields, err := a.promptTransactionFields(*current)
	if err != nil {
		return err
	}

	if _, err := a.transactions.Update(ctx, fields); err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Updated", id)
	return nil
}

// DeleteTransaction prompts for a transaction id and removes it.
func (a *App) DeleteTransaction(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter transaction id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.transactions.Delete(ctx, id); err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Deleted", id)
	return nil
}
