// Файл: pkg/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type StorageConfig struct {
	// Базовый каталог: внутри него живут data/ и .locks/.
	// Для общего доступа указывают каталог на сетевом диске
	// (например, Google Drive), локально — ".".
	BasePath    string
	LockTimeout time.Duration
}

type TrackerConfig struct {
	// Кто вносит изменения (пишется в collected_by упоминаний).
	CurrentUser string
}

type Config struct {
	Storage StorageConfig
	Tracker TrackerConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Storage: StorageConfig{
			BasePath:    getEnv("TRACKER_BASE_PATH", "."),
			LockTimeout: getEnvDuration("TRACKER_LOCK_TIMEOUT_SECONDS", 10*time.Second),
		},
		Tracker: TrackerConfig{
			CurrentUser: getEnv("TRACKER_USER", "default_user"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		log.Printf("Предупреждение: некорректное значение %s=%q, используется %s.", key, value, fallback)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
