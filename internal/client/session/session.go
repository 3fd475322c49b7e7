// Package session owns the process-wide credential: a single bearer token,
// persisted in the local metadata store and restored at startup.
//
// The token is the only piece of state mutated from multiple call sites
// (login, logout, auth-expiry handling), so every read-modify-write on it
// goes through one mutex. User identity is decoded from the token's claims
// without signature verification: the server is the verifier, the client
// only needs the public fields.
package session

import (
	"context"
	"sync"

	"github.com/cczzHoward/article-cli/internal/client/models"
	"github.com/cczzHoward/article-cli/internal/client/repositories/metadata"
	"github.com/cczzHoward/article-cli/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKey is the metadata key the credential is persisted under.
const TokenKey = "auth_token"

type userClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Session holds the current credential and the identity decoded from it.
// The zero value is not usable; construct with New.
type Session struct {
	repo   metadata.Repository
	logger logging.Logger

	mu        sync.Mutex
	token     string
	user      *models.User
	onExpired func()
}

func New(repo metadata.Repository, logger logging.Logger) *Session {
	return &Session{repo: repo, logger: logger}
}

// Restore loads a previously persisted token, if any. A stored token whose
// claims cannot be decoded is discarded rather than kept half-usable.
func (s *Session) Restore(ctx context.Context) error {
	value, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return err
	}
	if len(value) == 0 {
		return nil
	}

	user, err := decodeUser(string(value))
	if err != nil {
		s.logger.Warn(ctx, "discarding stored token", "error", err)
		return s.repo.Delete(ctx, TokenKey)
	}

	s.mu.Lock()
	s.token = string(value)
	s.user = user
	s.mu.Unlock()
	return nil
}

// SetToken installs a new credential and persists it. Called on successful
// login and registration.
func (s *Session) SetToken(ctx context.Context, token string) error {
	user, err := decodeUser(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	return s.repo.Set(ctx, TokenKey, []byte(token))
}

// Token returns the current credential, if one is set.
func (s *Session) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// User returns the identity decoded from the current credential.
func (s *Session) User() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

// Clear drops the credential from memory and wipes the metadata store.
// Used on user-initiated logout; nothing account-scoped may survive it.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	return s.repo.Clear(ctx)
}

// Expire clears the credential and fires the expiry callback. Called by the
// transport layer when the server answers with an auth rejection. Clearing
// is best-effort: a storage failure must not mask the expiry signal.
func (s *Session) Expire(ctx context.Context) {
	s.mu.Lock()
	wasSet := s.token != ""
	s.token = ""
	s.user = nil
	cb := s.onExpired
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, TokenKey); err != nil {
		s.logger.Warn(ctx, "failed to remove expired token", "error", err)
	}
	if wasSet && cb != nil {
		cb()
	}
}

// OnExpired registers the callback fired when the credential is rejected by
// the server. The CLI uses it to route the user back to login.
func (s *Session) OnExpired(fn func()) {
	s.mu.Lock()
	s.onExpired = fn
	s.mu.Unlock()
}

func decodeUser(token string) (*models.User, error) {
	claims := &userClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return &models.User{ID: claims.ID, Username: claims.Username}, nil
}
