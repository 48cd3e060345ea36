package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config структура конфигурации клиента
type Config struct {
	BackendBaseURL string // базовый URL REST API бекенда
	Port           string // порт локального веб-клиента
	SessionFile    string // путь к файлу с сохранённой сессией
	AppEnv         string
}

// LoadConfig загружает переменные из .env
func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения")
	}

	cfg := &Config{
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:5000/api"),
		Port:           getEnv("PORT", "8080"),
		SessionFile:    getEnv("SESSION_FILE", "session.json"),
		AppEnv:         getEnv("APP_ENV", "production"),
	}

	return cfg
}

// getEnv получает переменную окружения или использует дефолтное значение
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
