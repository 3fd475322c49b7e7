package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cczzHoward/article-cli/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new account.
// Like the web client, a successful registration signs the user in directly.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, username, string(password)); err != nil {
		printlnFn("Registration failed:", userMessage(err))
		return err
	}

	printlnFn("Welcome,", username+"!")
	return nil
}

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, username, string(password)); err != nil {
		printlnFn("Login failed:", userMessage(err))
		return err
	}

	printlnFn("Logged in as", username)
	return nil
}

// Logout clears the local credential. The server keeps no session state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", userMessage(err))
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami shows the authoritative identity from the server.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		printlnFn("Error:", userMessage(err))
		return err
	}
	printlnFn(fmt.Sprintf("%s (id %s)", user.Username, user.ID))
	return nil
}

// userMessage converts an error into text safe to show to the user: server
// rejections verbatim, everything else through a fixed set of phrasings.
func userMessage(err error) string {
	var remote *api.RemoteError
	switch {
	case errors.As(err, &remote):
		return remote.Message
	case errors.Is(err, api.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, api.ErrUnauthorized):
		return "please login first"
	default:
		return err.Error()
	}
}
