// Package services contains the application services of the mymoney client:
// authentication, the local mirrors of the remote collections, and the
// dashboard derivation on top of them.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mymoney/internal/client/api"
	"github.com/dmitrijs2005/mymoney/internal/client/models"
	"github.com/dmitrijs2005/mymoney/internal/client/session"
	"github.com/dmitrijs2005/mymoney/internal/common"
)

// AuthService defines login/registration against the remote user collection.
//
// Contract:
//   - Login: resolve the username in the store, compare passwords, persist
//     the session. Fails with common.ErrNotFound when no record matches the
//     username and common.ErrInvalidCredentials on a password mismatch.
//   - Register: create a user record unconditionally and log it in. The
//     store enforces no username uniqueness, so duplicates are possible;
//     Login then takes the first match.
//   - Logout: clear the durable session slot.
type AuthService interface {
	Login(ctx context.Context, creds models.LoginCredentials) (models.User, error)
	Register(ctx context.Context, creds models.RegisterCredentials) (models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	store   api.Store
	session *session.Manager
}

// NewAuthService binds an AuthService to the remote store and session.
func NewAuthService(store api.Store, sess *session.Manager) AuthService {
	return &authService{store: store, session: sess}
}

// Login compares the stored password with the supplied one by plain
// equality. The store holds passwords in the clear; it offers no hashing,
// so there is nothing stronger to compare against.
func (a *authService) Login(ctx context.Context, creds models.LoginCredentials) (models.User, error) {
	if err := creds.Validate(); err != nil {
		return models.User{}, err
	}

	users, err := a.store.ListUsers(ctx, creds.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}
	if len(users) == 0 {
		return models.User{}, fmt.Errorf("%w: user %q", common.ErrNotFound, creds.Username)
	}

	u := users[0]
	if u.Password != creds.Password {
		return models.User{}, common.ErrInvalidCredentials
	}

	if err := a.session.SetUser(ctx, u); err != nil {
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}
	return u, nil
}

func (a *authService) Register(ctx context.Context, creds models.RegisterCredentials) (models.User, error) {
	if err := creds.Validate(); err != nil {
		return models.User{}, err
	}

	created, err := a.store.CreateUser(ctx, creds)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	if err := a.session.SetUser(ctx, created); err != nil {
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}
	return created, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}
