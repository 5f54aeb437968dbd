package api

import (
	"tugasku/internal/api/handlers"
	"tugasku/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func RegisterRoutes(app *fiber.App, h *handlers.Handler, store *session.Store) {
	api := app.Group("/api")

	// Auth
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
	api.Post("/logout", h.Logout)

	// Everything below needs a bound session
	auth := middleware.RequireAuth(store)
	api.Get("/me", auth, h.Me)
	api.Get("/tugas", auth, h.ListTasks)
	api.Post("/tugas", auth, h.CreateTask)
	api.Post("/tugas/:id/complete", auth, h.CompleteTask)
}

// RegisterPages wires the fixed HTML entry points. The SPA still links to the
// legacy /login/login.html path, which serves the register page.
func RegisterPages(app *fiber.App) {
	app.Static("/", "./public")
	app.Static("/", "./pages")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile("./pages/halo.html")
	})
	app.Get("/login/login.html", func(c *fiber.Ctx) error {
		return c.SendFile("./pages/register.html")
	})
}
