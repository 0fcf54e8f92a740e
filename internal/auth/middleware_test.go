package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/class-marketplace/pkg/util"
)

func newProtectedApp(t *testing.T, tm *TokenManager, handlerCalls *int) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"message": domainErr.Message})
		},
	})

	mw := NewAuthMiddleware(tm)
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		*handlerCalls++
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return c.Status(http.StatusInternalServerError).SendString("no principal")
		}
		return c.SendString(principal.Email)
	})
	return app
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	calls := 0
	app := newProtectedApp(t, NewTokenManager("secret", 60), &calls)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Zero(t, calls, "handler must not run without a credential")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	t.Parallel()

	calls := 0
	app := newProtectedApp(t, NewTokenManager("secret", 60), &calls)

	for _, header := range []string{"justonetoken", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
	require.Zero(t, calls)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	t.Parallel()

	calls := 0
	app := newProtectedApp(t, NewTokenManager("secret", 60), &calls)

	token, _, err := NewTokenManager("other-secret", 60).Issue("u@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Zero(t, calls)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	calls := 0
	tm := NewTokenManager("secret", 60)
	app := newProtectedApp(t, tm, &calls)

	expired := &TokenManager{secret: []byte("secret"), ttl: -time.Minute}
	token, _, err := expired.Issue("u@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Zero(t, calls)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	calls := 0
	tm := NewTokenManager("secret", 60)
	app := newProtectedApp(t, tm, &calls)

	token, _, err := tm.Issue("u@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, calls)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "u@x.com", string(body))
}
