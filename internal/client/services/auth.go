// Package services contains application services for the dockeep console:
// authentication and session persistence, document browsing, archive
// operations, and the batch upload orchestrator.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nmatveev/dockeep/internal/client/api"
	"github.com/nmatveev/dockeep/internal/client/models"
	"github.com/nmatveev/dockeep/internal/client/repositories/session"
	"github.com/nmatveev/dockeep/internal/common"
	"github.com/nmatveev/dockeep/internal/cryptox"
	"github.com/nmatveev/dockeep/internal/logging"
)

// AuthService defines authentication operations for the console.
//
// Contract:
//   - Login: authenticate against the backend and persist the session.
//   - Restore: rehydrate a persisted session and probe the backend to
//     check the token is still live.
//   - Logout: best-effort server-side revoke plus local clear.
//   - ForceLogout: local-only clear, used as the global 401 hook.
//   - Current: the in-memory session, nil when logged out.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.Session, error)
	Restore(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
	ForceLogout()
	Current() *models.Session
}

type authService struct {
	client  api.Client
	repo    session.Repository
	sealKey []byte
	logger  logging.Logger

	current *models.Session
}

// NewAuthService constructs an AuthService bound to the given API client,
// session repository and sealing key.
func NewAuthService(client api.Client, repo session.Repository, sealKey []byte, logger logging.Logger) AuthService {
	return &authService{client: client, repo: repo, sealKey: sealKey, logger: logger}
}

// Login authenticates and persists the resulting session sealed with the
// local key. A persistence failure does not fail the login; the session
// simply will not survive a restart.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.Session, error) {
	sess, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.persist(ctx, sess); err != nil {
		a.logger.Warn(ctx, "failed to persist session", "error", err)
	}

	a.current = sess
	return sess, nil
}

// Restore loads the persisted session, attaches its token, and validates
// it against the backend. A rejected token clears local state and returns
// common.ErrorNoSession; an unreachable backend keeps the session so the
// user can retry once the server is back.
func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	sealed, err := a.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	plaintext, err := cryptox.Open(sealed.Ciphertext, sealed.Nonce, a.sealKey)
	if err != nil {
		// Unreadable blob: wipe it rather than failing every startup.
		a.logger.Warn(ctx, "discarding unreadable session", "error", err)
		_ = a.repo.Clear(ctx)
		return nil, common.ErrorNoSession
	}

	var sess models.Session
	if err := json.Unmarshal(plaintext, &sess); err != nil {
		_ = a.repo.Clear(ctx)
		return nil, common.ErrorNoSession
	}

	a.client.SetToken(sess.Token)

	if err := a.client.Validate(ctx); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// The 401 hook has already cleared local state.
			return nil, common.ErrorNoSession
		}
		if errors.Is(err, api.ErrUnavailable) {
			a.logger.Warn(ctx, "server unreachable, keeping saved session", "error", err)
			a.current = &sess
			return &sess, nil
		}
		return nil, err
	}

	a.current = &sess
	return &sess, nil
}

// Logout revokes the token server-side on a best-effort basis and always
// clears local state.
func (a *authService) Logout(ctx context.Context) error {
	if a.current != nil {
		if err := a.client.Logout(ctx); err != nil && !errors.Is(err, common.ErrorUnauthorized) {
			a.logger.Warn(ctx, "server-side logout failed", "error", err)
		}
	}
	a.ForceLogout()
	return nil
}

// ForceLogout clears the in-memory and persisted session without talking
// to the server. It is registered as the transport's 401 hook, so a stale
// token from any endpoint drops the console to logged-out state.
func (a *authService) ForceLogout() {
	a.current = nil
	a.client.SetToken("")
	if err := a.repo.Clear(context.Background()); err != nil {
		a.logger.Warn(context.Background(), "failed to clear saved session", "error", err)
	}
}

func (a *authService) Current() *models.Session {
	return a.current
}

func (a *authService) persist(ctx context.Context, sess *models.Session) error {
	plaintext, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	ciphertext, nonce, err := cryptox.Seal(plaintext, a.sealKey)
	if err != nil {
		return err
	}
	return a.repo.Save(ctx, session.Sealed{Ciphertext: ciphertext, Nonce: nonce})
}
