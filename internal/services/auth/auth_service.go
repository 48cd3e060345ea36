package auth

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"bookswap-client/internal/config"
	"bookswap-client/internal/gateway"
	"bookswap-client/internal/session"
)

// AuthService – структура для обработки входа и регистрации
type AuthService struct {
	cfg   *config.Config
	store *session.Store
	gw    *gateway.Client
}

// NewAuthService – конструктор AuthService
func NewAuthService(cfg *config.Config, store *session.Store, gw *gateway.Client) *AuthService {
	return &AuthService{
		cfg:   cfg,
		store: store,
		gw:    gw,
	}
}

// Login выполняет вход через бекенд и сохраняет сессию
func (s *AuthService) Login(c fiber.Ctx) error {
	var creds gateway.Credentials
	if err := c.Bind().Body(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if creds.Username == "" || creds.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Укажите имя пользователя и пароль"})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	if err := s.store.Login(ctx, s.gw, creds); err != nil {
		return backendError(c, err)
	}

	user, _ := s.store.CurrentUser()
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// Register регистрирует нового пользователя. Вход при этом не выполняется
func (s *AuthService) Register(c fiber.Ctx) error {
	var req gateway.RegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Укажите имя пользователя и пароль"})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	if err := s.store.Register(ctx, s.gw, req); err != nil {
		return backendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Пользователь зарегистрирован",
	})
}

// Logout сбрасывает сессию. Ошибиться здесь нельзя
func (s *AuthService) Logout(c fiber.Ctx) error {
	s.store.Logout()
	return c.JSON(fiber.Map{"success": true})
}

// Current возвращает состояние сессии для отрисовки шапки страницы
func (s *AuthService) Current(c fiber.Ctx) error {
	user, ok := s.store.CurrentUser()
	if !ok {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user":          user,
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
