package gateway

import (
	"context"
	"fmt"
	"strconv"

	"bookswap-client/internal/models"
)

// DealInput — данные для создания запроса на обмен
type DealInput struct {
	RecipientID     int    `json:"recipient_id"`
	RecipientBookID int    `json:"recipient_book_id"`
	Place           string `json:"place,omitempty"`
}

// AcceptInput — данные для принятия запроса на обмен
type AcceptInput struct {
	SenderBookID int  `json:"sender_book_id"`
	GiftFlag     bool `json:"gift_flag"`
}

// Deals возвращает сделки пользователя (и входящие, и исходящие)
func (c *Client) Deals(ctx context.Context, userID int) ([]models.Deal, error) {
	var deals []models.Deal
	endpoint := "/deals?user_id=" + strconv.Itoa(userID)
	if err := c.request(ctx, "GET", endpoint, nil, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// CreateDeal создает запрос на обмен книги получателя
func (c *Client) CreateDeal(ctx context.Context, input DealInput) error {
	return c.request(ctx, "POST", "/deals", input, nil)
}

// AcceptDeal принимает запрос на обмен. Принять сделку может только
// её получатель, проверка выполняется на стороне бекенда
func (c *Client) AcceptDeal(ctx context.Context, id int, input AcceptInput) error {
	return c.request(ctx, "PUT", fmt.Sprintf("/deals/%d/accept", id), input, nil)
}

// CompleteDeal завершает согласованную сделку
func (c *Client) CompleteDeal(ctx context.Context, id int) error {
	return c.request(ctx, "PUT", fmt.Sprintf("/deals/%d/complete", id), nil, nil)
}

// CancelDeal отменяет сделку в статусе Created
func (c *Client) CancelDeal(ctx context.Context, id int) error {
	return c.request(ctx, "DELETE", fmt.Sprintf("/deals/%d", id), nil, nil)
}
