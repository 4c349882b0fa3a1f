package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/mymoney/internal/client/api"
	"github.com/dmitrijs2005/mymoney/internal/client/models"
	"github.com/dmitrijs2005/mymoney/internal/client/report"
)

// DashboardService assembles the aggregate dashboard view from fresh server
// data. It does not keep a mirror: every Fetch hits the store.
type DashboardService struct {
	store api.Store
}

// NewDashboardService binds the service to the remote store.
func NewDashboardService(store api.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Fetch loads transactions and budgets in parallel and aggregates them into
// a DashboardData. Both requests must succeed; if either fails the other is
// cancelled and the error is returned.
func (s *DashboardService) Fetch(ctx context.Context) (report.DashboardData, error) {
	var (
		transactions []models.Transaction
		budgets      []models.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.store.ListTransactions(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.store.ListBudgets(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return report.DashboardData{}, fmt.Errorf("fetch dashboard: %w", err)
	}

	return report.BuildDashboard(transactions, budgets), nil
}
