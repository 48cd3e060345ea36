package review

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"bookswap-client/internal/config"
	"bookswap-client/internal/gateway"
	"bookswap-client/internal/session"
)

// ReviewService представляет сервис для работы с отзывами
type ReviewService struct {
	cfg   *config.Config
	gw    *gateway.Client
	store *session.Store
}

// NewReviewService создает новый экземпляр ReviewService
func NewReviewService(cfg *config.Config, gw *gateway.Client, store *session.Store) *ReviewService {
	return &ReviewService{
		cfg:   cfg,
		gw:    gw,
		store: store,
	}
}

// CreateReview добавляет отзыв о книге
func (s *ReviewService) CreateReview(c fiber.Ctx) error {
	var input gateway.ReviewInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if input.BookID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Укажите книгу"})
	}
	if input.ReviewText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Текст отзыва не может быть пустым"})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	if err := s.gw.CreateReview(ctx, input); err != nil {
		return backendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Отзыв добавлен",
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
