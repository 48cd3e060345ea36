package middleware

import (
	"github.com/gofiber/fiber/v3"

	"bookswap-client/internal/session"
)

// RequireSession создаёт middleware для маршрутов, требующих входа.
// Идентификатор пользователя кладётся в контекст запроса
func RequireSession(store *session.Store) fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := store.CurrentUser()
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Требуется вход в систему",
			})
		}

		// Добавляем userID в контекст
		c.Locals("userID", user.ID)

		return c.Next()
	}
}
