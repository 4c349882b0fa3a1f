package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/mymoney/internal/client/api"
	"github.com/dmitrijs2005/mymoney/internal/client/models"
)

// BudgetService mirrors the remote budgets collection in memory, with the
// same contract as TransactionService. Budgets expose no delete.
type BudgetService struct {
	store api.Store

	mu      sync.Mutex
	budgets []models.Budget
}

// NewBudgetService binds the service to the remote store.
func NewBudgetService(store api.Store) *BudgetService {
	return &BudgetService{store: store}
}

// FetchAll replaces the local mirror wholesale with the server response for
// the given user.
func (s *BudgetService) FetchAll(ctx context.Context, userID string) ([]models.Budget, error) {
	budgets, err := s.store.ListBudgets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch budgets: %w", err)
	}

	s.mu.Lock()
	s.budgets = budgets
	s.mu.Unlock()
	return s.Budgets(), nil
}

// Budgets returns a snapshot copy of the mirror.
func (s *BudgetService) Budgets() []models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// Create validates the payload, stores it remotely, and appends the server
// echo to the mirror.
func (s *BudgetService) Create(ctx context.Context, payload models.NewBudget) (models.Budget, error) {
	if err := payload.Validate(); err != nil {
		return models.Budget{}, err
	}

	created, err := s.store.CreateBudget(ctx, payload)
	if err != nil {
		return models.Budget{}, fmt.Errorf("create budget: %w", err)
	}

	s.mu.Lock()
	s.budgets = append(s.budgets, created)
	s.mu.Unlock()
	return created, nil
}

// Update replaces the record remotely, then replaces the first mirror entry
// with a matching id in place, preserving order.
func (s *BudgetService) Update(ctx context.Context, b models.Budget) (models.Budget, error) {
	if err := b.Validate(); err != nil {
		return models.Budget{}, err
	}

	updated, err := s.store.UpdateBudget(ctx, b)
	if err != nil {
		return models.Budget{}, fmt.Errorf("update budget: %w", err)
	}

	s.mu.Lock()
	for i := range s.budgets {
		if s.budgets[i].ID == updated.ID {
			s.budgets[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}
