package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/mymoney/internal/client/models"
	"github.com/dmitrijs2005/mymoney/internal/common"
)

// HTTPStore is the REST/JSON implementation of Store.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStore builds a store client for the given base URL. The timeout
// bounds each whole round-trip; there is no retry and no cancellation of an
// already-issued request beyond the caller's context.
func NewHTTPStore(baseURL string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// do performs one round-trip. A nil out skips response decoding.
func (s *HTTPStore) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := s.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", common.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", common.ErrNotFound, method, path)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, common.ErrValidation) {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
		return fmt.Errorf("%w: decode %s %s: %v", common.ErrValidation, method, path, err)
	}
	return nil
}

func userFilter(userID string) url.Values {
	if userID == "" {
		return nil
	}
	return url.Values{"userId": []string{userID}}
}

func (s *HTTPStore) ListUsers(ctx context.Context, username string) ([]models.User, error) {
	var q url.Values
	if username != "" {
		q = url.Values{"username": []string{username}}
	}
	var users []models.User
	if err := s.do(ctx, http.MethodGet, "/users", q, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *HTTPStore) CreateUser(ctx context.Context, payload models.RegisterCredentials) (models.User, error) {
	var created models.User
	if err := s.do(ctx, http.MethodPost, "/users", nil, payload, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (s *HTTPStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.do(ctx, http.MethodGet, "/transactions", userFilter(userID), nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *HTTPStore) CreateTransaction(ctx context.Context, payload models.NewTransaction) (models.Transaction, error) {
	var created models.Transaction
	if err := s.do(ctx, http.MethodPost, "/transactions", nil, payload, &created); err != nil {
		return models.Transaction{}, err
	}
	return created, nil
}

func (s *HTTPStore) UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	var updated models.Transaction
	if err := s.do(ctx, http.MethodPut, "/transactions/"+tx.ID, nil, tx, &updated); err != nil {
		return models.Transaction{}, err
	}
	return updated, nil
}

func (s *HTTPStore) DeleteTransaction(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/transactions/"+id, nil, nil, nil)
}

func (s *HTTPStore) ListBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.do(ctx, http.MethodGet, "/budgets", userFilter(userID), nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (s *HTTPStore) CreateBudget(ctx context.Context, payload models.NewBudget) (models.Budget, error) {
	var created models.Budget
	if err := s.do(ctx, http.MethodPost, "/budgets", nil, payload, &created); err != nil {
		return models.Budget{}, err
	}
	return created, nil
}

func (s *HTTPStore) UpdateBudget(ctx context.Context, b models.Budget) (models.Budget, error) {
	var updated models.Budget
	if err := s.do(ctx, http.MethodPut, "/budgets/"+b.ID, nil, b, &updated); err != nil {
		return models.Budget{}, err
	}
	return updated, nil
}
