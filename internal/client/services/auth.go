// Package services contains the application services of the article client:
// authentication, article and comment flows, optimistic like toggles, and
// draft-backed form handling.
package services

import (
	"context"
	"fmt"

	"github.com/cczzHoward/article-cli/internal/client/api"
	"github.com/cczzHoward/article-cli/internal/client/models"
	"github.com/cczzHoward/article-cli/internal/client/session"
	"github.com/cczzHoward/article-cli/internal/logging"
)

// AuthService defines the account operations of the CLI.
//
// Contract:
//   - Register: create an account; the returned token is installed directly.
//   - Login: authenticate and install the returned token.
//   - Logout: clear the local credential. Nothing is sent to the server.
//   - CurrentUser: fetch the authoritative identity from /users/me.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

type authService struct {
	client  api.Client
	session *session.Session
	logger  logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session.
func NewAuthService(client api.Client, sess *session.Session, logger logging.Logger) AuthService {
	return &authService{client: client, session: sess, logger: logger}
}

func (a *authService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	token, err := a.client.Register(ctx, username, password)
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	if err := a.session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	a.logger.Info(ctx, "registered", "username", username)
	return nil
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	a.logger.Info(ctx, "logged in", "username", username)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	if _, ok := a.session.Token(); !ok {
		return nil, api.ErrUnauthorized
	}
	return a.client.CurrentUser(ctx)
}
