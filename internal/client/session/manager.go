package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/mymoney/internal/client/models"
)

// UserKey is the well-known slot name holding the serialized current user.
// Absence means "not logged in".
const UserKey = "user"

// Manager is the session object passed to services instead of a
// process-wide singleton. It caches the current user in memory and mirrors
// every change into the durable repository.
type Manager struct {
	repo Repository

	mu   sync.RWMutex
	user *models.User
}

// NewManager builds a Manager over the given durable slot.
func NewManager(repo Repository) *Manager {
	return &Manager{repo: repo}
}

// Restore loads the persisted user, if any. An absent slot leaves the
// session logged out and is not an error.
func (m *Manager) Restore(ctx context.Context) error {
	raw, err := m.repo.Get(ctx, UserKey)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	m.mu.Lock()
	m.user = &u
	m.mu.Unlock()
	return nil
}

// SetUser persists u as the current user and caches it.
func (m *Manager) SetUser(ctx context.Context, u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("serialize session user: %w", err)
	}
	if err := m.repo.Set(ctx, UserKey, raw); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = &u
	m.mu.Unlock()
	return nil
}

// Clear removes the persisted user and logs the session out.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.repo.Delete(ctx, UserKey); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
	return nil
}

// Current returns the logged-in user, if any.
func (m *Manager) Current() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}
