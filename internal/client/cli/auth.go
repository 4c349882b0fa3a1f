package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/mymoney/internal/client/models"
	"github.com/dmitrijs2005/mymoney/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username, email, and password and creates
// a new account via the AuthService. On success the account is logged in
// immediately.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.auth.Register(ctx, models.RegisterCredentials{Username: username, Email: email, Password: password})
	if err != nil {
		a.logger.Error(ctx, "registration failed", "error", err)
		printlnFn("Registration failed:", err)
		return err
	}

	printlnFn("Welcome, " + u.Username + "!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. A wrong
// username and a wrong password are reported with distinct messages; the
// store being unreachable is reported as such.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.auth.Login(ctx, models.LoginCredentials{Username: username, Password: password})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			printlnFn("No such user:", username)
		case errors.Is(err, common.ErrInvalidCredentials):
			printlnFn("Invalid password")
		case errors.Is(err, common.ErrUnavailable):
			printlnFn("Store unreachable, try again later")
		default:
			printlnFn("Login failed:", err)
		}
		a.logger.Warn(ctx, "login failed", "username", username, "error", err)
		return err
	}

	printlnFn("Welcome, " + u.Username + "!")
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		return err
	}
	printlnFn("Logged out")
	return nil
}
