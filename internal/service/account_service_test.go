package service

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/class-marketplace/internal/config"
	"github.com/spec-kit/class-marketplace/internal/domain"
	"github.com/spec-kit/class-marketplace/internal/events"
	"github.com/spec-kit/class-marketplace/internal/repository"
	apperrors "github.com/spec-kit/class-marketplace/pkg/util"
)

type fakeUserRepo struct {
	repository.UserRepository

	mu     sync.Mutex
	byID   map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*domain.User{}}
}

func (f *fakeUserRepo) CreateIfAbsent(_ context.Context, user *domain.User) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == user.Email {
			return false, nil
		}
	}
	f.nextID++
	user.ID = string(rune('0' + f.nextID))
	copied := *user
	f.byID[user.ID] = &copied
	return true, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) SetRole(_ context.Context, id string, role domain.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Role = role
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.User, 0, len(f.byID))
	for _, user := range f.byID {
		copied := *user
		out = append(out, &copied)
	}
	return out, nil
}

func testAccountConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}
}

func TestAccountService_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := NewAccountService(testAccountConfig(), AccountDependencies{UserRepo: users})

	user, token, _, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEmpty(t, token)

	// Duplicate registration conflicts.
	_, _, _, err = svc.Register(context.Background(), "Ann", "ann@x.com", "pw123456")
	require.Error(t, err)
	require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)

	_, token, _, err = svc.Login(context.Background(), "ann@x.com", "pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, _, _, err = svc.Login(context.Background(), "ann@x.com", "wrong")
	require.Error(t, err)
	require.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)

	_, _, _, err = svc.Login(context.Background(), "nobody@x.com", "pw123456")
	require.Error(t, err)
	require.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestAccountService_IssueTokenIsUnconditional(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(testAccountConfig(), AccountDependencies{UserRepo: newFakeUserRepo()})

	// No directory record for this email; issuance still succeeds.
	token, _, err := svc.IssueToken("stranger@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
}

func TestAccountService_EnsureUser(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := NewAccountService(testAccountConfig(), AccountDependencies{UserRepo: users})

	first, created, err := svc.EnsureUser(context.Background(), "Bob", "bob@x.com")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.EnsureUser(context.Background(), "Bob", "bob@x.com")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)

	_, _, err = svc.EnsureUser(context.Background(), "Bob", "")
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestAccountService_PromoteAndIsAdmin(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	dispatcher := events.NewInMemoryDispatcher()
	var promoted []events.Event
	dispatcher.Subscribe(events.EventUserPromoted, func(_ context.Context, e events.Event) error {
		promoted = append(promoted, e)
		return nil
	})
	svc := NewAccountService(testAccountConfig(), AccountDependencies{UserRepo: users, Dispatcher: dispatcher})

	user, _, err := svc.EnsureUser(context.Background(), "Cam", "cam@x.com")
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(context.Background(), "cam@x.com")
	require.NoError(t, err)
	require.False(t, isAdmin)

	require.NoError(t, svc.PromoteToAdmin(context.Background(), user.ID))
	require.Len(t, promoted, 1)

	isAdmin, err = svc.IsAdmin(context.Background(), "cam@x.com")
	require.NoError(t, err)
	require.True(t, isAdmin)

	// Unknown email is simply not an admin.
	isAdmin, err = svc.IsAdmin(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	require.False(t, isAdmin)

	err = svc.PromoteToAdmin(context.Background(), "missing-id")
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
