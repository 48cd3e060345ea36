package book

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"bookswap-client/internal/config"
	"bookswap-client/internal/gateway"
	"bookswap-client/internal/models"
	"bookswap-client/internal/session"
)

// BookService представляет сервис страниц каталога книг
type BookService struct {
	cfg   *config.Config
	gw    *gateway.Client
	store *session.Store
}

// NewBookService создает новый экземпляр BookService
func NewBookService(cfg *config.Config, gw *gateway.Client, store *session.Store) *BookService {
	return &BookService{
		cfg:   cfg,
		gw:    gw,
		store: store,
	}
}

// ListBooks возвращает список книг с фильтрами по названию и доступности
func (s *BookService) ListBooks(c fiber.Ctx) error {
	filter := gateway.BookFilter{
		Title: c.Query("title"),
	}

	if raw := c.Query("is_available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверное значение is_available"})
		}
		filter.IsAvailable = &available
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	books, err := s.gw.Books(ctx, filter)
	if err != nil {
		return backendError(c, err)
	}

	return c.JSON(fiber.Map{
		"books": books,
		"count": len(books),
	})
}

// GetBook возвращает страницу книги: саму книгу, отзывы и признак владельца
func (s *BookService) GetBook(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID книги"})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	book, err := s.gw.Book(ctx, id)
	if err != nil {
		return backendError(c, err)
	}

	// Отзывы — вспомогательная часть страницы, их ошибка не прячет книгу
	reviews, err := s.gw.BookReviews(ctx, id)
	if err != nil {
		log.Printf("Ошибка получения отзывов о книге %d: %v", id, err)
		reviews = []models.Review{}
	}

	isOwner := false
	if user, ok := s.store.CurrentUser(); ok {
		isOwner = book.UserID == user.ID
	}

	return c.JSON(fiber.Map{
		"book":     book,
		"reviews":  reviews,
		"is_owner": isOwner,
	})
}

// BookReviews возвращает отзывы о книге
func (s *BookService) BookReviews(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID книги"})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	reviews, err := s.gw.BookReviews(ctx, id)
	if err != nil {
		return backendError(c, err)
	}

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// MyBooks возвращает книги текущего пользователя.
// Бекенд не умеет фильтровать по владельцу, поэтому фильтруем на клиенте
func (s *BookService) MyBooks(c fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	books, err := s.gw.Books(ctx, gateway.BookFilter{})
	if err != nil {
		return backendError(c, err)
	}

	mine := make([]models.Book, 0, len(books))
	for _, book := range books {
		if book.UserID == userID {
			mine = append(mine, book)
		}
	}

	return c.JSON(fiber.Map{
		"books": mine,
		"count": len(mine),
	})
}

// CreateBook добавляет новую книгу текущего пользователя
func (s *BookService) CreateBook(c fiber.Ctx) error {
	var input gateway.BookInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Укажите название книги"})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	if err := s.gw.CreateBook(ctx, input); err != nil {
		return backendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Книга добавлена",
	})
}

// UpdateBook обновляет книгу. Право владельца проверяет бекенд
func (s *BookService) UpdateBook(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID книги"})
	}

	var update gateway.BookUpdate
	if err := c.Bind().Body(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	if err := s.gw.UpdateBook(ctx, id, update); err != nil {
		return backendError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Книга обновлена",
	})
}

// DeleteBook удаляет книгу. Право владельца проверяет бекенд
func (s *BookService) DeleteBook(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID книги"})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	if err := s.gw.DeleteBook(ctx, id); err != nil {
		return backendError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Книга удалена",
	})
}

// backendError превращает ошибку шлюза в JSON-ответ с кодом бекенда
func backendError(c fiber.Ctx, err error) error {
	var reqErr *gateway.RequestError
	if errors.As(err, &reqErr) {
		return c.Status(reqErr.StatusCode).JSON(fiber.Map{"error": reqErr.Message})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
}
