package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// Ключи долговременного хранилища сессии
const (
	keyToken = "token"
	keyUser  = "user"
)

// Storage — долговременное хранилище пар ключ-значение
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStorage хранит пары ключ-значение в JSON-файле на диске
type FileStorage struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

// NewFileStorage открывает хранилище по указанному пути.
// Повреждённый файл молча заменяется пустым хранилищем
func NewFileStorage(path string) (*FileStorage, error) {
	fs := &FileStorage{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, &fs.data); err != nil {
		fs.data = make(map[string]string)
	}

	return fs, nil
}

// Get возвращает значение по ключу
func (fs *FileStorage) Get(key string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	value, ok := fs.data[key]
	return value, ok
}

// Set сохраняет значение и сбрасывает хранилище на диск
func (fs *FileStorage) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.data[key] = value
	return fs.flush()
}

// Delete удаляет значение и сбрасывает хранилище на диск
func (fs *FileStorage) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	delete(fs.data, key)
	return fs.flush()
}

func (fs *FileStorage) flush() error {
	raw, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.path, raw, 0600)
}
