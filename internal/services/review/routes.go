package review

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты для отзывов
func (s *ReviewService) SetupRoutes(app *fiber.App, requireSession fiber.Handler) {
	// Группа для отзывов, все маршруты требуют авторизации
	api := app.Group("/api/reviews")
	api.Use(requireSession)

	api.Post("/", s.CreateReview)
}
