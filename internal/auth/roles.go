package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/class-marketplace/internal/repository"
	apperrors "github.com/spec-kit/class-marketplace/pkg/util"
)

// RequireAdmin gates admin-only routes. The role is looked up in the
// directory on every call rather than read from the token: the token
// may be up to an hour old and the role can change within its
// lifetime. Must be composed after AuthMiddleware.Handle; reaching it
// without a principal is a wiring bug, not a client error.
func RequireAdmin(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewInternalError(errors.New("admin check reached without verified principal"))
		}

		user, err := users.GetByEmail(c.Context(), principal.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewForbidden("forbidden")
			}
			return apperrors.MapError(err)
		}
		if !user.IsAdmin() {
			return apperrors.NewForbidden("forbidden")
		}
		return c.Next()
	}
}
