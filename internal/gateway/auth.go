package gateway

import "context"

// Credentials — данные для входа
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse — ответ бекенда на вход
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int    `json:"user_id"`
}

// RegisterRequest — данные для регистрации нового пользователя
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// Login выполняет вход и возвращает токен доступа
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResponse, error) {
	var resp LoginResponse
	if err := c.request(ctx, "POST", "/login", creds, &resp); err != nil {
		return LoginResponse{}, err
	}
	return resp, nil
}

// Register регистрирует нового пользователя. Вход при этом не выполняется
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.request(ctx, "POST", "/register", req, nil)
}
