package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/class-marketplace/internal/auth"
	"github.com/spec-kit/class-marketplace/internal/config"
	"github.com/spec-kit/class-marketplace/internal/domain"
	"github.com/spec-kit/class-marketplace/internal/events"
	"github.com/spec-kit/class-marketplace/internal/repository"
	apperrors "github.com/spec-kit/class-marketplace/pkg/util"
)

// AccountService coordinates identity flows: token issuance, account
// registration and login, directory listing, and admin promotion.
type AccountService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AccountDependencies bundles collaborators for the account service.
type AccountDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, deps AccountDependencies) *AccountService {
	return &AccountService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// IssueToken mints a credential for the email without checking the
// directory. Clients authenticated by the identity frontend exchange
// their email for a token here.
func (s *AccountService) IssueToken(email string) (string, time.Time, error) {
	return s.tokenMgr.Issue(email)
}

// Register creates a local account and returns a fresh credential.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	inserted, err := s.users.CreateIfAbsent(ctx, user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if !inserted {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	}

	token, exp, err := s.tokenMgr.Issue(user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates a local account.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.Issue(user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// EnsureUser records a user seen through the identity frontend,
// returning created=false when the email is already known.
func (s *AccountService) EnsureUser(ctx context.Context, name, email string) (*domain.User, bool, error) {
	if email == "" {
		return nil, false, apperrors.NewValidationError("email required", nil)
	}
	user := &domain.User{Name: name, Email: email}
	inserted, err := s.users.CreateIfAbsent(ctx, user)
	if err != nil {
		return nil, false, err
	}
	if !inserted {
		existing, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	return user, true, nil
}

// ListUsers returns all directory records.
func (s *AccountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// IsAdmin reports whether the email currently holds the admin role.
// Always a fresh lookup; the answer may change within a token's
// lifetime.
func (s *AccountService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role to the user id.
func (s *AccountService) PromoteToAdmin(ctx context.Context, id string) error {
	if err := s.users.SetRole(ctx, id, domain.RoleAdmin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserPromoted,
			Actor:     id,
			Timestamp: time.Now(),
			Payload:   events.UserPromotedPayload{UserID: id},
		})
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
