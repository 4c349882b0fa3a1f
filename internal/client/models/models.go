// Package models defines the record shapes exchanged with the remote store
// and the payload types built from user input.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/mymoney/internal/common"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// DateLayout is the calendar-date format used on the wire.
const DateLayout = "2006-01-02"

// MonthLayout is the year-month format used for budgets and trend keys.
const MonthLayout = "2006-01"

var (
	ErrEmptyUsername    = fmt.Errorf("%w: empty username", common.ErrValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: empty password", common.ErrValidation)
	ErrEmptyEmail       = fmt.Errorf("%w: empty email", common.ErrValidation)
	ErrEmptyDescription = fmt.Errorf("%w: empty description", common.ErrValidation)
	ErrEmptyCategory    = fmt.Errorf("%w: empty category", common.ErrValidation)
	ErrInvalidType      = fmt.Errorf("%w: type must be income or expense", common.ErrValidation)
	ErrNegativeAmount   = fmt.Errorf("%w: amount must not be negative", common.ErrValidation)
	ErrInvalidAmount    = fmt.Errorf("%w: amount must be positive", common.ErrValidation)
	ErrInvalidDate      = fmt.Errorf("%w: date must be YYYY-MM-DD", common.ErrValidation)
	ErrInvalidMonth     = fmt.Errorf("%w: month must be YYYY-MM", common.ErrValidation)
)

// User is an account record in the remote store. The password travels in
// plain text; the store offers nothing better (see AuthService docs).
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginCredentials is the input for AuthService.Login.
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterCredentials is the input for AuthService.Register.
type RegisterCredentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c LoginCredentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return ErrEmptyUsername
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (c RegisterCredentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrEmptyEmail
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// Transaction is a single recorded income or expense event.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Amount      Amount          `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// NewTransaction is the create payload; the store echoes back the full
// record with an assigned id.
type NewTransaction struct {
	UserID      string          `json:"userId"`
	Amount      Amount          `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

func validateTransactionFields(amount Amount, category string, typ TransactionType, date, description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	if typ != TypeIncome && typ != TypeExpense {
		return ErrInvalidType
	}
	if amount < 0 {
		return ErrNegativeAmount
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (p NewTransaction) Validate() error {
	return validateTransactionFields(p.Amount, p.Category, p.Type, p.Date, p.Description)
}

func (t Transaction) Validate() error {
	return validateTransactionFields(t.Amount, t.Category, t.Type, t.Date, t.Description)
}

// Month returns the YYYY-MM prefix of the transaction date, the grouping key
// for monthly trends.
func (t Transaction) Month() string {
	if len(t.Date) < len(MonthLayout) {
		return t.Date
	}
	return t.Date[:len(MonthLayout)]
}

// Budget is a user-defined spending cap for a category in a given month.
// (userId, category, month) is the conceptual key, but the store does not
// enforce uniqueness; duplicates can coexist.
type Budget struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Category string `json:"category"`
	Amount   Amount `json:"amount"`
	Month    string `json:"month"`
}

// NewBudget is the create payload for a budget.
type NewBudget struct {
	UserID   string `json:"userId"`
	Category string `json:"category"`
	Amount   Amount `json:"amount"`
	Month    string `json:"month"`
}

func validateBudgetFields(category string, amount Amount, month string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return ErrInvalidMonth
	}
	return nil
}

func (p NewBudget) Validate() error {
	return validateBudgetFields(p.Category, p.Amount, p.Month)
}

func (b Budget) Validate() error {
	return validateBudgetFields(b.Category, b.Amount, b.Month)
}
