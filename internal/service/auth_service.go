package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"wolfstreet/internal/auth"
	"wolfstreet/internal/cache"
	apperrors "wolfstreet/internal/errors"
	"wolfstreet/internal/model"
	"wolfstreet/internal/repository"
)

const (
	bearerPrefix    = "Bearer "
	sessionCacheTTL = 5 * time.Minute
	// tokenIssueAttempts bounds re-issue on token collision. With 32 bytes of
	// entropy a collision is probabilistically negligible; the store rejects
	// it anyway via the primary key.
	tokenIssueAttempts = 3
)

// AuthService handles signup, login and bearer-token authentication.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Authenticate(ctx context.Context, authorization string) (*auth.Principal, error)
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cache    *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, cache *cache.Client) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		cache:    cache,
	}
}

// Signup creates a user with a hashed credential and issues a session.
// Email uniqueness is enforced by the store's unique index, not by a
// check-then-insert, so concurrent signups cannot race.
func (s *authService) Signup(ctx context.Context, name, email, password string) (string, *model.User, error) {
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: auth.HashPassword(password),
		Plan:         model.PlanFree,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyRegistered) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return "", nil, err
	}
	return session.Token, user, nil
}

// Login verifies the credential and issues a new session. Prior sessions for
// the same user stay valid. Unknown email and wrong password report the same
// error so the caller cannot tell which case occurred.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if auth.HashPassword(password) != user.PasswordHash {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return "", nil, err
	}
	return session.Token, user, nil
}

// Authenticate resolves a raw Authorization header value to a principal.
// Expired sessions are rejected as invalid tokens.
func (s *authService) Authenticate(ctx context.Context, authorization string) (*auth.Principal, error) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return nil, apperrors.ErrMissingToken
	}
	token := strings.TrimPrefix(authorization, bearerPrefix)

	session, err := s.resolveSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find session user: %w", err)
	}

	return &auth.Principal{User: user, Session: session}, nil
}

func (s *authService) issueSession(ctx context.Context, user *model.User) (*model.Session, error) {
	var lastErr error
	for i := 0; i < tokenIssueAttempts; i++ {
		token, err := auth.GenerateToken()
		if err != nil {
			return nil, err
		}
		now := time.Now().UTC()
		session := &model.Session{
			Token:     token,
			UserID:    user.ID,
			CreatedAt: now,
			ExpiresAt: now.Add(model.SessionTTL),
		}
		if err := s.sessions.Create(ctx, session); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("create session: %w", err)
		}
		return session, nil
	}
	return nil, fmt.Errorf("issue session: %w", lastErr)
}

func sessionCacheKey(token string) string {
	return "session:" + token
}

// resolveSession looks the token up through the fail-safe cache. Expiry is
// re-checked by the caller, so serving a cached record is safe.
func (s *authService) resolveSession(ctx context.Context, token string) (*model.Session, error) {
	if data, _ := s.cache.Get(ctx, sessionCacheKey(token)); data != nil {
		var cached model.Session
		if err := json.Unmarshal(data, &cached); err == nil {
			// The token is excluded from serialized sessions; restore it
			// from the lookup key.
			cached.Token = token
			return &cached, nil
		}
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	if payload, err := json.Marshal(session); err == nil {
		_ = s.cache.Set(ctx, sessionCacheKey(token), payload, sessionCacheTTL)
	}
	return session, nil
}
