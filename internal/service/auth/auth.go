package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"expresso/internal/entities"
)

const sessionTokenBytes = 32

type Auth struct {
	accounts   AccountRepository
	sessions   SessionRepository
	sessionTTL time.Duration
}

func New(accounts AccountRepository, sessions SessionRepository, sessionTTL time.Duration) *Auth {
	return &Auth{
		accounts:   accounts,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Authenticate checks the credentials against the stored bcrypt hash and,
// on success, persists a new session and returns it with its opaque token.
func (s *Auth) Authenticate(ctx context.Context, username, password string) (*entities.Session, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if !account.Active {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	now := time.Now().UTC()
	session := entities.Session{
		Token:     token,
		AccountID: account.ID,
		Username:  account.Username,
		Role:      account.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	err = s.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &session, nil
}

// ValidateSession resolves a token to its account. Missing, expired and
// deactivated cases all collapse into ErrUnauthenticated.
func (s *Auth) ValidateSession(ctx context.Context, token string) (*entities.Account, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("lookup session: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		return nil, ErrUnauthenticated
	}

	account, err := s.accounts.GetByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("lookup session account: %w", err)
	}

	if !account.Active {
		return nil, ErrUnauthenticated
	}

	return account, nil
}

// Logout drops the session row. Unknown tokens are not an error, so the
// operation stays idempotent.
func (s *Auth) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := s.sessions.Delete(ctx, token)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Auth) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.sessions.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("cleanup sessions: %w", err)
	}
	return removed, nil
}

// EnsureAdminAccount creates the bootstrap admin account when it does not
// exist yet. Called once at startup.
func (s *Auth) EnsureAdminAccount(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("bootstrap admin: %w", ErrInvalidCredentials)
	}

	_, err := s.accounts.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return fmt.Errorf("lookup admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	hashStr := string(hash)
	role := entities.RoleAdmin
	active := true
	_, err = s.accounts.Create(ctx, entities.AccountModify{
		Username:     &username,
		PasswordHash: &hashStr,
		Role:         &role,
		Active:       &active,
	})
	if err != nil {
		// Lost a race with a concurrent bootstrap; the account exists.
		if errors.Is(err, ErrConflict) {
			return nil
		}
		return fmt.Errorf("create admin account: %w", err)
	}

	return nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
