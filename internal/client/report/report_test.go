package report

import (
	"testing"

	"github.com/dmitrijs2005/mymoney/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTransactions is the canonical scenario:
// one January income, one January "Food" expense, one February "food" expense.
func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "t1", Type: models.TypeIncome, Amount: 1000, Category: "Salary", Date: "2024-01-05"},
		{ID: "t2", Type: models.TypeExpense, Amount: 200, Category: "Food", Date: "2024-01-10"},
		{ID: "t3", Type: models.TypeExpense, Amount: 50, Category: "food", Date: "2024-02-01"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleTransactions())

	assert.Equal(t, 1000.0, s.TotalIncome)
	assert.Equal(t, 250.0, s.TotalExpenses)
	assert.Equal(t, 750.0, s.RemainingBalance)
}

func TestSummarize_BalanceInvariant(t *testing.T) {
	lists := [][]models.Transaction{
		nil,
		sampleTransactions(),
		{
			{Type: models.TypeExpense, Amount: 10.25, Date: "2023-12-31"},
			{Type: models.TypeExpense, Amount: 0, Date: "2024-01-01"},
			{Type: models.TypeIncome, Amount: 3.5, Date: "2024-01-02"},
		},
	}
	for _, txs := range lists {
		s := Summarize(txs)
		assert.Equal(t, s.TotalIncome-s.TotalExpenses, s.RemainingBalance)
	}
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestCategoryExpenses_CaseInsensitiveGrouping(t *testing.T) {
	got := CategoryExpenses(sampleTransactions())

	require.Len(t, got, 1)
	assert.Equal(t, CategoryExpense{Category: "food", Amount: 250}, got[0])
}

func TestCategoryExpenses_InsertionOrder(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TypeExpense, Amount: 5, Category: "Rent", Date: "2024-01-01"},
		{Type: models.TypeExpense, Amount: 7, Category: "food", Date: "2024-01-02"},
		{Type: models.TypeExpense, Amount: 3, Category: "RENT", Date: "2024-01-03"},
		{Type: models.TypeIncome, Amount: 100, Category: "Salary", Date: "2024-01-04"},
	}

	got := CategoryExpenses(txs)

	require.Len(t, got, 2)
	assert.Equal(t, CategoryExpense{Category: "rent", Amount: 8}, got[0])
	assert.Equal(t, CategoryExpense{Category: "food", Amount: 7}, got[1])
}

func TestCategoryExpenses_Empty(t *testing.T) {
	assert.Equal(t, []CategoryExpense{}, CategoryExpenses(nil))
}

func TestMonthlyTrends(t *testing.T) {
	got := MonthlyTrends(sampleTransactions())

	require.Len(t, got, 2)
	assert.Equal(t, MonthlyTrend{Month: "2024-01", Income: 1000, Expenses: 200}, got[0])
	assert.Equal(t, MonthlyTrend{Month: "2024-02", Income: 0, Expenses: 50}, got[1])
}

func TestMonthlyTrends_Empty(t *testing.T) {
	assert.Equal(t, []MonthlyTrend{}, MonthlyTrends(nil))
}

func TestBudgetStatuses(t *testing.T) {
	budgets := []models.Budget{
		{ID: "b1", Category: "Food", Amount: 300, Month: "2024-01"},
	}

	got := BudgetStatuses(budgets, sampleTransactions(), "2024-01")

	require.Len(t, got, 1)
	assert.Equal(t, 200.0, got[0].Spent)
	assert.Equal(t, 100.0, got[0].Remaining)
	assert.Equal(t, "Food", got[0].Category)
}

func TestBudgetStatuses_RemainingInvariant(t *testing.T) {
	budgets := []models.Budget{
		{ID: "b1", Category: "Food", Amount: 300, Month: "2024-01"},
		{ID: "b2", Category: "rent", Amount: 100, Month: "2023-06"},
	}
	for _, month := range []string{"2024-01", "2024-02", "1999-12"} {
		for _, st := range BudgetStatuses(budgets, sampleTransactions(), month) {
			assert.Equal(t, float64(st.Amount)-st.Spent, st.Remaining)
		}
	}
}

func TestBudgetStatuses_UsesReferenceMonthNotBudgetMonth(t *testing.T) {
	// budget stored for January, reference month February: only the
	// February expense counts
	budgets := []models.Budget{{ID: "b1", Category: "Food", Amount: 300, Month: "2024-01"}}

	got := BudgetStatuses(budgets, sampleTransactions(), "2024-02")

	require.Len(t, got, 1)
	assert.Equal(t, 50.0, got[0].Spent)
	assert.Equal(t, 250.0, got[0].Remaining)
}

func TestBudgetStatuses_OneToOneAndOrdered(t *testing.T) {
	budgets := []models.Budget{
		{ID: "b1", Category: "Zoo", Amount: 10, Month: "2024-01"},
		{ID: "b2", Category: "Food", Amount: 300, Month: "2024-01"},
		{ID: "b3", Category: "Food", Amount: 300, Month: "2024-01"}, // duplicate key is allowed
	}

	got := BudgetStatuses(budgets, sampleTransactions(), "2024-01")

	require.Len(t, got, 3)
	for i := range budgets {
		assert.Equal(t, budgets[i].ID, got[i].ID)
	}
	assert.Equal(t, got[1].Spent, got[2].Spent)
}

func TestBudgetStatuses_Empty(t *testing.T) {
	assert.Empty(t, BudgetStatuses(nil, sampleTransactions(), "2024-01"))
	got := BudgetStatuses([]models.Budget{{Category: "Food", Amount: 300}}, nil, "2024-01")
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Spent)
	assert.Equal(t, 300.0, got[0].Remaining)
}

func TestBuildDashboard(t *testing.T) {
	budgets := []models.Budget{
		{ID: "b1", Category: "Food", Amount: 300, Month: "2024-01"},
		{ID: "b2", Category: "Travel", Amount: 150, Month: "2024-01"},
	}

	got := BuildDashboard(sampleTransactions(), budgets)

	assert.Equal(t, Summary{TotalIncome: 1000, TotalExpenses: 250, RemainingBalance: 750}, got.Summary)
	assert.Equal(t, []CategoryExpense{{Category: "food", Amount: 250}}, got.CategoryExpenses)
	assert.Equal(t, []MonthlyTrend{
		{Month: "2024-01", Income: 1000, Expenses: 200},
		{Month: "2024-02", Income: 0, Expenses: 50},
	}, got.MonthlyTrends)

	require.Len(t, got.BudgetComparison, 2)
	// comparison uses all-time spend and keeps the budget's casing
	assert.Equal(t, BudgetComparison{Category: "Food", Budgeted: 300, Spent: 250}, got.BudgetComparison[0])
	assert.Equal(t, BudgetComparison{Category: "Travel", Budgeted: 150, Spent: 0}, got.BudgetComparison[1])
}

func TestBuildDashboard_Idempotent(t *testing.T) {
	txs := sampleTransactions()
	budgets := []models.Budget{{ID: "b1", Category: "Food", Amount: 300, Month: "2024-01"}}

	first := BuildDashboard(txs, budgets)
	second := BuildDashboard(txs, budgets)

	assert.Equal(t, first, second)
}

func TestBuildDashboard_Empty(t *testing.T) {
	got := BuildDashboard(nil, nil)

	assert.Equal(t, Summary{}, got.Summary)
	assert.Empty(t, got.CategoryExpenses)
	assert.Empty(t, got.MonthlyTrends)
	assert.Empty(t, got.BudgetComparison)
}

func TestClassifyHealth(t *testing.T) {
	tests := []struct {
		name   string
		spent  float64
		amount float64
		want   HealthTier
	}{
		{"nothing spent", 0, 300, TierUnused},
		{"well under", 100, 300, TierOnTrack},
		{"exactly half is caution", 150, 300, TierCaution},
		{"just under ninety", 269, 300, TierCaution},
		{"ninety percent", 270, 300, TierWarning},
		{"exactly at cap", 300, 300, TierWarning},
		{"over cap", 310, 300, TierExceeded},
		{"zero amount zero spent", 0, 0, TierUnused},
		{"zero amount with spend", 1, 0, TierExceeded},
		{"negative spend", -5, 300, TierUnused},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyHealth(tc.spent, tc.amount)
			assert.Equal(t, tc.want, got.Tier)
			assert.Equal(t, tc.want.String(), got.Label)
		})
	}
}
