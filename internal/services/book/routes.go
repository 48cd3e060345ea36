package book

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты каталога книг
func (s *BookService) SetupRoutes(app *fiber.App, requireSession fiber.Handler) {
	// Публичные маршруты каталога.
	// "/my" регистрируется раньше "/:id", иначе его перехватит параметр
	app.Get("/api/books", s.ListBooks)
	app.Get("/api/books/my", s.MyBooks, requireSession)
	app.Get("/api/books/:id", s.GetBook)
	app.Get("/api/books/:id/reviews", s.BookReviews)

	// Защищенные маршруты (требуют авторизации)
	api := app.Group("/api/books")
	api.Use(requireSession)

	api.Post("/", s.CreateBook)
	api.Put("/:id", s.UpdateBook)
	api.Delete("/:id", s.DeleteBook)
}
