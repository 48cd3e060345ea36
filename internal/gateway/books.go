package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"bookswap-client/internal/models"
)

// BookFilter — фильтры списка книг
type BookFilter struct {
	Title       string
	IsAvailable *bool
}

// BookInput — данные для создания книги
type BookInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// BookUpdate — частичное обновление книги. Пустые поля не отправляются
type BookUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

// ReviewInput — данные для создания отзыва
type ReviewInput struct {
	BookID     int    `json:"book_id"`
	ReviewText string `json:"review_text"`
}

// Books возвращает список книг с учетом фильтров
func (c *Client) Books(ctx context.Context, filter BookFilter) ([]models.Book, error) {
	query := url.Values{}
	if filter.Title != "" {
		query.Set("title", filter.Title)
	}
	if filter.IsAvailable != nil {
		query.Set("is_available", strconv.FormatBool(*filter.IsAvailable))
	}

	endpoint := "/books"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var books []models.Book
	if err := c.request(ctx, "GET", endpoint, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Book возвращает одну книгу по ID
func (c *Client) Book(ctx context.Context, id int) (models.Book, error) {
	var book models.Book
	if err := c.request(ctx, "GET", fmt.Sprintf("/books/%d", id), nil, &book); err != nil {
		return models.Book{}, err
	}
	return book, nil
}

// CreateBook добавляет новую книгу текущего пользователя
func (c *Client) CreateBook(ctx context.Context, input BookInput) error {
	return c.request(ctx, "POST", "/books", input, nil)
}

// UpdateBook обновляет книгу. Менять книгу может только её владелец,
// проверка выполняется на стороне бекенда
func (c *Client) UpdateBook(ctx context.Context, id int, update BookUpdate) error {
	return c.request(ctx, "PUT", fmt.Sprintf("/books/%d", id), update, nil)
}

// DeleteBook удаляет книгу
func (c *Client) DeleteBook(ctx context.Context, id int) error {
	return c.request(ctx, "DELETE", fmt.Sprintf("/books/%d", id), nil, nil)
}

// BookReviews возвращает отзывы о книге
func (c *Client) BookReviews(ctx context.Context, bookID int) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.request(ctx, "GET", fmt.Sprintf("/books/%d/reviews", bookID), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview добавляет отзыв о книге
func (c *Client) CreateReview(ctx context.Context, input ReviewInput) error {
	return c.request(ctx, "POST", "/reviews", input, nil)
}
