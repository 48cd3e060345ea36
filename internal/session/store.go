package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"bookswap-client/internal/gateway"
	"bookswap-client/internal/models"
	"bookswap-client/internal/utils"
)

// Authenticator — часть API бекенда, которая нужна хранилищу сессии
type Authenticator interface {
	Login(ctx context.Context, creds gateway.Credentials) (gateway.LoginResponse, error)
	Register(ctx context.Context, req gateway.RegisterRequest) error
}

// Store хранит сессию текущего пользователя: токен и минимальную запись
// о пользователе в памяти и в долговременном хранилище. Все мутации идут
// через Login/Register/Logout, память и диск меняются согласованно.
type Store struct {
	storage Storage

	mu      sync.RWMutex
	token   string
	current *models.User
}

// NewStore создает хранилище сессии и восстанавливает сохранённую сессию
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	s.restore()
	return s
}

// restore читает сессию из долговременного хранилища. Повреждённая или
// просроченная запись молча сбрасывается — сессия остаётся неавторизованной
func (s *Store) restore() {
	token, okToken := s.storage.Get(keyToken)
	rawUser, okUser := s.storage.Get(keyUser)
	if !okToken || !okUser {
		// Половинчатая запись тоже считается повреждённой
		if okToken || okUser {
			s.clearStorage()
		}
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.ID == 0 {
		log.Println("⚠️ Сохранённая сессия повреждена, сбрасываем")
		s.clearStorage()
		return
	}

	if utils.TokenExpired(token) {
		log.Println("⚠️ Срок действия сохранённого токена истёк, сбрасываем сессию")
		s.clearStorage()
		return
	}

	s.token = token
	s.current = &user
}

// Login выполняет вход через бекенд и сохраняет сессию.
// При ошибке сессия остаётся неавторизованной
func (s *Store) Login(ctx context.Context, auth Authenticator, creds gateway.Credentials) error {
	resp, err := auth.Login(ctx, creds)
	if err != nil {
		return err
	}

	userID := resp.UserID
	if userID == 0 {
		// Бекенд может не вернуть user_id — тогда достаём его из токена
		userID, err = utils.ParseUserID(resp.AccessToken)
		if err != nil {
			return errors.New("не удалось определить идентификатор пользователя")
		}
	}

	user := models.User{ID: userID}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(keyToken, resp.AccessToken); err != nil {
		s.clearStorage()
		return err
	}
	if err := s.storage.Set(keyUser, string(rawUser)); err != nil {
		s.clearStorage()
		return err
	}

	s.token = resp.AccessToken
	s.current = &user
	return nil
}

// Register регистрирует нового пользователя. Вход при этом не выполняется
func (s *Store) Register(ctx context.Context, auth Authenticator, req gateway.RegisterRequest) error {
	return auth.Register(ctx, req)
}

// Logout сбрасывает сессию безусловно и никогда не возвращает ошибку
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearStorage()
}

// clearStorage очищает память и долговременное хранилище.
// Вызывается под блокировкой либо до публикации Store
func (s *Store) clearStorage() {
	s.token = ""
	s.current = nil
	if err := s.storage.Delete(keyToken); err != nil {
		log.Printf("Ошибка очистки хранилища сессии: %v", err)
	}
	if err := s.storage.Delete(keyUser); err != nil {
		log.Printf("Ошибка очистки хранилища сессии: %v", err)
	}
}

// CurrentUser возвращает текущего пользователя сессии
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// IsAuthenticated сообщает, авторизован ли пользователь
func (s *Store) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// Token возвращает текущий токен доступа. Реализует gateway.TokenSource
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
