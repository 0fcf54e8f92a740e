package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/class-marketplace/internal/domain"
	"github.com/spec-kit/class-marketplace/internal/repository"
	apperrors "github.com/spec-kit/class-marketplace/pkg/util"
)

type fakeUserDirectory struct {
	repository.UserRepository

	mu    sync.Mutex
	roles map[string]domain.Role
}

func (f *fakeUserDirectory) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	role, ok := f.roles[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &domain.User{Email: email, Role: role}, nil
}

func (f *fakeUserDirectory) setRole(email string, role domain.Role) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[email] = role
}

func newAdminApp(tm *TokenManager, dir *fakeUserDirectory) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"message": domainErr.Message})
		},
	})

	mw := NewAuthMiddleware(tm)
	app.Get("/admin", mw.Handle, RequireAdmin(dir), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequireAdmin_RoleReadFreshEachCall(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", 60)
	dir := &fakeUserDirectory{roles: map[string]domain.Role{"u@x.com": domain.RoleOrdinary}}
	app := newAdminApp(tm, dir)

	token, _, err := tm.Issue("u@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Promote between calls; the same still-valid token must observe
	// the new role because the gate re-reads the directory.
	dir.setRole("u@x.com", domain.RoleAdmin)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_UnknownUserForbidden(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", 60)
	dir := &fakeUserDirectory{roles: map[string]domain.Role{}}
	app := newAdminApp(tm, dir)

	token, _, err := tm.Issue("ghost@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdmin_WithoutPrincipalIsWiringError(t *testing.T) {
	t.Parallel()

	dir := &fakeUserDirectory{roles: map[string]domain.Role{}}
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"message": domainErr.Message})
		},
	})
	// Gate mounted without the auth middleware in front of it.
	app.Get("/admin", RequireAdmin(dir), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
