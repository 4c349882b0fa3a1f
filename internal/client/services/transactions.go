package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/mymoney/internal/client/api"
	"github.com/dmitrijs2005/mymoney/internal/client/models"
)

// TransactionService mirrors the remote transactions collection in memory.
// The mirror changes only after the remote round-trip succeeds; a failed
// call leaves it untouched and surfaces the error to the caller. There is
// no retry and no rollback. List replacement is atomic from a reader's
// point of view.
type TransactionService struct {
	store api.Store

	mu           sync.Mutex
	transactions []models.Transaction
}

// NewTransactionService binds the service to the remote store.
func NewTransactionService(store api.Store) *TransactionService {
	return &TransactionService{store: store}
}

// FetchAll replaces the local mirror wholesale with the server response for
// the given user. No incremental merge is attempted.
func (s *TransactionService) FetchAll(ctx context.Context, userID string) ([]models.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	s.mu.Lock()
	s.transactions = txs
	s.mu.Unlock()
	return s.Transactions(), nil
}

// Transactions returns a snapshot copy of the mirror.
func (s *TransactionService) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Create validates the payload, stores it remotely, and appends the server
// echo to the mirror.
func (s *TransactionService) Create(ctx context.Context, payload models.NewTransaction) (models.Transaction, error) {
	if err := payload.Validate(); err != nil {
		return models.Transaction{}, err
	}

	created, err := s.store.CreateTransaction(ctx, payload)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	s.mu.Lock()
	s.transactions = append(s.transactions, created)
	s.mu.Unlock()
	return created, nil
}

// Update replaces the record remotely, then replaces the first mirror entry
// with a matching id in place, preserving order.
func (s *TransactionService) Update(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return models.Transaction{}, err
	}

	updated, err := s.store.UpdateTransaction(ctx, tx)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}

	s.mu.Lock()
	for i := range s.transactions {
		if s.transactions[i].ID == updated.ID {
			s.transactions[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the record remotely, then removes every mirror entry with
// the matching id.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	s.mu.Lock()
	kept := s.transactions[:0]
	for _, t := range s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.transactions = kept
	s.mu.Unlock()
	return nil
}
