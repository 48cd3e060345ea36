package auth

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes регистрирует маршруты сессии в Fiber
func (s *AuthService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/session")

	api.Get("/", s.Current)
	api.Post("/login", s.Login)
	api.Post("/register", s.Register)
	api.Post("/logout", s.Logout)
}
