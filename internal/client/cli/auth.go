package cli

import (
	"context"
	"errors"
	"os"

	"github.com/nmatveev/dockeep/internal/client/api"
	"github.com/nmatveev/dockeep/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and authenticates against the
// backend. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			printlnFn("Invalid credentials.")
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Server unavailable, try again later.")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn("Logged in as", sess.User.Username)
	return nil
}

// Logout revokes the token on a best-effort basis and clears local state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.currentPath = "/"
	printlnFn("Logged out.")
	return nil
}
