package deal

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты для сделок обмена
func (s *DealService) SetupRoutes(app *fiber.App, requireSession fiber.Handler) {
	// Группа для сделок, все маршруты требуют авторизации
	api := app.Group("/api/deals")
	api.Use(requireSession)

	api.Get("/", s.ListDeals)
	api.Post("/", s.CreateDeal)
	api.Put("/:id/accept", s.AcceptDeal)
	api.Put("/:id/reject", s.RejectDeal)
	api.Put("/:id/complete", s.CompleteDeal)
	api.Delete("/:id", s.CancelDeal)
}
