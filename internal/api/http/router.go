package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lab-booking-service/internal/api/http/handlers"
	"github.com/spec-kit/lab-booking-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Laboratories   *handlers.LaboratoriesHandler
	AuthMiddleware *auth.Middleware
}

// route is one row of the startup routing table.
type route struct {
	method       string
	path         string
	handler      fiber.Handler
	authRequired bool
}

// RegisterRoutes wires HTTP routes from an explicit table under the /api prefix.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	routes := []route{
		{fiber.MethodPost, "/auth/login", cfg.Auth.Login, false},
		{fiber.MethodGet, "/auth/profile", cfg.Auth.Profile, true},

		{fiber.MethodGet, "/user/page", cfg.Users.Page, false},
		{fiber.MethodGet, "/user/list", cfg.Users.List, false},
		{fiber.MethodPost, "/user/register", cfg.Users.Register, false},
		{fiber.MethodGet, "/user/getById/:id", cfg.Users.GetByID, false},
		{fiber.MethodPut, "/user/update/:id", cfg.Users.Update, true},
		{fiber.MethodDelete, "/user/deleteById/:id", cfg.Users.DeleteByID, true},

		{fiber.MethodGet, "/laboratory/page", cfg.Laboratories.Page, false},
		{fiber.MethodGet, "/laboratory/list", cfg.Laboratories.List, false},
		{fiber.MethodPost, "/laboratory/save", cfg.Laboratories.Save, true},
		{fiber.MethodGet, "/laboratory/getById/:id", cfg.Laboratories.GetByID, false},
		{fiber.MethodPut, "/laboratory/update/:id", cfg.Laboratories.Update, true},
		{fiber.MethodDelete, "/laboratory/deleteById/:id", cfg.Laboratories.DeleteByID, true},
	}

	api := app.Group("/api")
	for _, r := range routes {
		if r.authRequired {
			api.Add(r.method, r.path, cfg.AuthMiddleware.Handle, r.handler)
			continue
		}
		api.Add(r.method, r.path, r.handler)
	}
}
