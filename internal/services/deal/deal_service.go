package deal

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"bookswap-client/internal/config"
	"bookswap-client/internal/dealview"
	"bookswap-client/internal/gateway"
	"bookswap-client/internal/session"
)

// Место встречи по умолчанию, пока стороны не договорились
const defaultPlace = "Место уточняется"

// DealService представляет сервис страниц сделок обмена
type DealService struct {
	cfg   *config.Config
	gw    *gateway.Client
	store *session.Store
}

// NewDealService создает новый экземпляр DealService
func NewDealService(cfg *config.Config, gw *gateway.Client, store *session.Store) *DealService {
	return &DealService{
		cfg:   cfg,
		gw:    gw,
		store: store,
	}
}

// dealItem — сделка, подготовленная к отрисовке. Статус, действия и контакты
// отдаются только через представление, чтобы страницы не выводили правила заново
type dealItem struct {
	ID              int                 `json:"id"`
	SenderID        int                 `json:"sender_id"`
	RecipientID     int                 `json:"recipient_id"`
	RecipientBookID int                 `json:"recipient_book_id"`
	SenderBookID    int                 `json:"sender_book_id,omitempty"`
	GiftFlag        bool                `json:"gift_flag"`
	View            dealview.Projection `json:"view"`
}

// ListDeals возвращает сделки текущего пользователя с их представлениями
func (s *DealService) ListDeals(c fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	// Получаем тип сделок (входящие/исходящие/все)
	dealType := c.Query("type", "all") // all, incoming, outgoing

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	deals, err := s.gw.Deals(ctx, userID)
	if err != nil {
		return backendError(c, err)
	}

	items := make([]dealItem, 0, len(deals))
	for _, deal := range deals {
		if dealType == "incoming" && deal.RecipientID != userID {
			continue
		}
		if dealType == "outgoing" && deal.SenderID != userID {
			continue
		}

		items = append(items, dealItem{
			ID:              deal.ID,
			SenderID:        deal.SenderID,
			RecipientID:     deal.RecipientID,
			RecipientBookID: deal.RecipientBookID,
			SenderBookID:    deal.SenderBookID,
			GiftFlag:        deal.GiftFlag,
			View:            dealview.Project(deal, userID),
		})
	}

	return c.JSON(fiber.Map{
		"deals": items,
		"count": len(items),
	})
}

// CreateDeal создает запрос на обмен книги получателя
func (s *DealService) CreateDeal(c fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	var input gateway.DealInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if input.RecipientID == 0 || input.RecipientBookID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Укажите получателя и его книгу"})
	}

	// Отправитель и получатель не могут совпадать
	if input.RecipientID == userID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Нельзя предложить обмен самому себе"})
	}

	if input.Place == "" {
		input.Place = defaultPlace
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	if err := s.gw.CreateDeal(ctx, input); err != nil {
		return backendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Запрос на обмен создан",
	})
}

// AcceptDeal принимает запрос на обмен, приложив книгу получателя.
// Без выбранной книги запрос к бекенду не отправляется
func (s *DealService) AcceptDeal(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID сделки"})
	}

	var input gateway.AcceptInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if err := dealview.ValidateAccept(input.SenderBookID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	if err := s.gw.AcceptDeal(ctx, id, input); err != nil {
		return backendError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Запрос на обмен принят",
	})
}

// RejectDeal отклоняет запрос на обмен.
// У бекенда нет перехода Created -> Rejected, поэтому действие пока не работает
func (s *DealService) RejectDeal(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
		"error": "Отклонение запроса пока не поддерживается бекендом",
	})
}

// CompleteDeal завершает согласованную сделку
func (s *DealService) CompleteDeal(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID сделки"})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	if err := s.gw.CompleteDeal(ctx, id); err != nil {
		return backendError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Обмен завершен",
	})
}

// CancelDeal отменяет сделку в статусе Created
func (s *DealService) CancelDeal(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID сделки"})
	}

	ctx, cancel := gateway.RequestContext()
	defer cancel()

	if err := s.gw.CancelDeal(ctx, id); err != nil {
		return backendError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Сделка отменена",
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
