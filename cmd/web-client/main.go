package main

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"bookswap-client/internal/config"
	"bookswap-client/internal/gateway"
	"bookswap-client/internal/middleware"
	"bookswap-client/internal/services/auth"
	"bookswap-client/internal/services/book"
	"bookswap-client/internal/services/deal"
	"bookswap-client/internal/services/review"
	"bookswap-client/internal/session"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.LoadConfig()

	// Открываем хранилище сессии и восстанавливаем сохранённую сессию
	storage, err := session.NewFileStorage(cfg.SessionFile)
	if err != nil {
		log.Fatalf("❌ Ошибка при открытии хранилища сессии: %v", err)
	}
	store := session.NewStore(storage)

	// Клиент REST API бекенда
	gw := gateway.NewClient(cfg.BackendBaseURL, store)

	// Создаём экземпляр Fiber
	app := fiber.New(fiber.Config{
		AppName:      "BookSwap Client",
		ErrorHandler: errorHandler,
	})

	// Добавляем middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: false,
	}))

	// Страж сессии для защищённых маршрутов
	requireSession := middleware.RequireSession(store)

	// Создаём сервисы
	authService := auth.NewAuthService(cfg, store, gw)
	bookService := book.NewBookService(cfg, gw, store)
	reviewService := review.NewReviewService(cfg, gw, store)
	dealService := deal.NewDealService(cfg, gw, store)

	// Регистрируем маршруты
	authService.SetupRoutes(app)
	bookService.SetupRoutes(app, requireSession)
	reviewService.SetupRoutes(app, requireSession)
	dealService.SetupRoutes(app, requireSession)

	// Запускаем клиент
	log.Printf("✅ BookSwap Client запущен на порту %s, бекенд: %s", cfg.Port, cfg.BackendBaseURL)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler обрабатывает ошибки Fiber
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	// Проверяем, является ли ошибка из Fiber
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Отправляем ошибку в JSON
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
