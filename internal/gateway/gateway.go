package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestError представляет ошибку, которой бекенд ответил на запрос
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// TokenSource отдаёт текущий токен авторизации.
// Пустая строка означает, что пользователь не авторизован.
type TokenSource interface {
	Token() string
}

// Client — HTTP-клиент REST API бекенда. Каждый вызов — одна попытка
// без повторов и без кеширования; интерпретация ответа остаётся за вызывающим.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient создает новый экземпляр Client
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
}

// RequestContext возвращает контекст с таймаутом для запросов к бекенду
func RequestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// request выполняет запрос к бекенду: сериализует тело в JSON, добавляет
// Bearer-токен (если он есть) и разбирает JSON-ответ в out. Ответ с кодом
// вне 2xx превращается в *RequestError с сообщением из тела ответа.
func (c *Client) request(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка сериализации тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readError(resp)
	}

	if out == nil {
		return nil
	}

	// Тело разбираем только если бекенд действительно вернул JSON
	contentType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if contentType != "application/json" {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ошибка разбора ответа бекенда: %w", err)
	}

	return nil
}

// readError извлекает человекочитаемое сообщение из тела ответа с ошибкой
func readError(resp *http.Response) error {
	reqErr := &RequestError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("запрос завершился с кодом %d", resp.StatusCode),
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return reqErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		reqErr.Message = payload.Message
	}

	return reqErr
}
