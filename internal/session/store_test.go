package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookswap-client/internal/gateway"
)

type fakeAuth struct {
	resp       gateway.LoginResponse
	err        error
	loginCalls int
}

func (f *fakeAuth) Login(_ context.Context, _ gateway.Credentials) (gateway.LoginResponse, error) {
	f.loginCalls++
	if f.err != nil {
		return gateway.LoginResponse{}, f.err
	}
	return f.resp, nil
}

func (f *fakeAuth) Register(_ context.Context, _ gateway.RegisterRequest) error {
	return f.err
}

func newStorage(t *testing.T) *FileStorage {
	t.Helper()
	storage, err := NewFileStorage(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return storage
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestRestoreWellFormedSession(t *testing.T) {
	storage := newStorage(t)
	require.NoError(t, storage.Set(keyToken, "opaque-token"))
	require.NoError(t, storage.Set(keyUser, `{"id":42}`))

	store := NewStore(storage)

	require.True(t, store.IsAuthenticated())
	user, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, 42, user.ID)
	assert.Equal(t, "opaque-token", store.Token())
}

func TestRestoreMalformedUserClearsStorage(t *testing.T) {
	storage := newStorage(t)
	require.NoError(t, storage.Set(keyToken, "opaque-token"))
	require.NoError(t, storage.Set(keyUser, "not-json"))

	store := NewStore(storage)

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())

	_, ok := storage.Get(keyToken)
	assert.False(t, ok)
	_, ok = storage.Get(keyUser)
	assert.False(t, ok)
}

func TestRestoreMissingTokenStaysUnauthenticated(t *testing.T) {
	storage := newStorage(t)
	require.NoError(t, storage.Set(keyUser, `{"id":42}`))

	store := NewStore(storage)
	assert.False(t, store.IsAuthenticated())
}

func TestRestoreExpiredTokenClearsSession(t *testing.T) {
	storage := newStorage(t)
	expired := signedToken(t, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	require.NoError(t, storage.Set(keyToken, expired))
	require.NoError(t, storage.Set(keyUser, `{"id":42}`))

	store := NewStore(storage)

	assert.False(t, store.IsAuthenticated())
	_, ok := storage.Get(keyToken)
	assert.False(t, ok)
}

func TestLoginPersistsSession(t *testing.T) {
	storage := newStorage(t)
	store := NewStore(storage)
	auth := &fakeAuth{resp: gateway.LoginResponse{AccessToken: "opaque-token", UserID: 7}}

	err := store.Login(context.Background(), auth, gateway.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, 1, auth.loginCalls)

	user, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "opaque-token", store.Token())

	// Сессия переживает перезапуск
	reloaded := NewStore(storage)
	user, ok = reloaded.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, 7, user.ID)
}

func TestLoginFallsBackToTokenClaims(t *testing.T) {
	storage := newStorage(t)
	store := NewStore(storage)
	token := signedToken(t, jwt.MapClaims{
		"sub": "9",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	auth := &fakeAuth{resp: gateway.LoginResponse{AccessToken: token}}

	err := store.Login(context.Background(), auth, gateway.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	user, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, 9, user.ID)
}

func TestLoginErrorLeavesSessionUnset(t *testing.T) {
	storage := newStorage(t)
	store := NewStore(storage)
	auth := &fakeAuth{err: &gateway.RequestError{StatusCode: 401, Message: "Неверные учетные данные"}}

	err := store.Login(context.Background(), auth, gateway.Credentials{Username: "alice", Password: "wrong"})
	require.Error(t, err)

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
}

func TestLogoutAlwaysClears(t *testing.T) {
	storage := newStorage(t)
	require.NoError(t, storage.Set(keyToken, "opaque-token"))
	require.NoError(t, storage.Set(keyUser, `{"id":42}`))

	store := NewStore(storage)
	require.True(t, store.IsAuthenticated())

	store.Logout()
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())

	_, ok := storage.Get(keyToken)
	assert.False(t, ok)

	// Повторный выход безопасен
	store.Logout()
	assert.False(t, store.IsAuthenticated())
}

func TestFileStorageSurvivesCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0600))

	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	_, ok := storage.Get(keyToken)
	assert.False(t, ok)

	require.NoError(t, storage.Set(keyToken, "opaque-token"))
	value, ok := storage.Get(keyToken)
	require.True(t, ok)
	assert.Equal(t, "opaque-token", value)
}
