package mockstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/mymoney/internal/client/models"
)

// seedFile is the JSON shape accepted by LoadSeed: one optional array per
// collection.
type seedFile struct {
	Users        []models.User        `json:"users"`
	Transactions []models.Transaction `json:"transactions"`
	Budgets      []models.Budget      `json:"budgets"`
}

// LoadSeed replaces the store contents with the collections from a JSON
// file. Records without an id get one assigned.
func (s *Server) LoadSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for i := range seed.Users {
		if seed.Users[i].ID == "" {
			seed.Users[i].ID = uuid.NewString()
		}
	}
	for i := range seed.Transactions {
		if seed.Transactions[i].ID == "" {
			seed.Transactions[i].ID = uuid.NewString()
		}
	}
	for i := range seed.Budgets {
		if seed.Budgets[i].ID == "" {
			seed.Budgets[i].ID = uuid.NewString()
		}
	}

	s.mu.Lock()
	s.users = seed.Users
	s.transactions = seed.Transactions
	s.budgets = seed.Budgets
	s.mu.Unlock()
	return nil
}
