package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-marketplace/internal/api/http/handlers"
	"github.com/spec-kit/class-marketplace/internal/auth"
	"github.com/spec-kit/class-marketplace/internal/repository"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Classes        *handlers.ClassesHandler
	Instructors    *handlers.InstructorsHandler
	Carts          *handlers.CartsHandler
	Payments       *handlers.PaymentsHandler
	Stats          *handlers.StatsHandler
	AuthMiddleware *auth.AuthMiddleware
	UserRepo       repository.UserRepository
}

// RegisterRoutes wires HTTP routes. Admin routes compose the role gate
// strictly after token verification; the gate re-reads the role from
// the directory on every request.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	requireAuth := cfg.AuthMiddleware.Handle
	requireAdmin := auth.RequireAdmin(cfg.UserRepo)

	authGroup := app.Group("/auth")
	authGroup.Post("/token", cfg.Auth.Token)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	app.Get("/users", requireAuth, requireAdmin, cfg.Users.List)
	app.Post("/users", cfg.Users.Create)
	app.Get("/users/admin/:email", requireAuth, cfg.Users.CheckAdmin)
	app.Patch("/users/admin/:id", requireAuth, requireAdmin, cfg.Users.Promote)

	app.Get("/classes", cfg.Classes.List)
	app.Post("/classes", requireAuth, requireAdmin, cfg.Classes.Create)
	app.Delete("/classes/:id", requireAuth, requireAdmin, cfg.Classes.Delete)

	app.Get("/instructors", cfg.Instructors.List)

	app.Get("/carts", requireAuth, cfg.Carts.View)
	app.Post("/carts", cfg.Carts.Add)
	app.Delete("/carts/:id", cfg.Carts.Remove)

	app.Post("/payments/intent", requireAuth, cfg.Payments.CreateIntent)
	app.Post("/payments", requireAuth, cfg.Payments.Checkout)

	app.Get("/admin/stats", requireAuth, requireAdmin, cfg.Stats.Overview)
}
