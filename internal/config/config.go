package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config - настройки дашборда
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Dataset Config
	DatasetSource    string `env:"DATASET_SOURCE" envDefault:"csv"`
	DatasetPath      string `env:"DATASET_PATH" envDefault:"data/AtropellosGS2015.csv"`
	DatasetEncoding  string `env:"DATASET_ENCODING" envDefault:"utf-8"`
	DatasetLatColumn string `env:"DATASET_LAT_COLUMN" envDefault:"X"`
	DatasetLonColumn string `env:"DATASET_LON_COLUMN" envDefault:"Y"`
	DatabaseURL      string `env:"DATABASE_URL"`

	// Redis Config, пустой адрес отключает кэш агрегатов
	RedisAddr string        `env:"REDIS_ADDR"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	// Map Config
	MapZoom int `env:"MAP_ZOOM" envDefault:"9"`

	// API Keys for authentication, пустой список отключает проверку
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DatasetSource:    strings.ToLower(getEnv("DATASET_SOURCE", SourceCSV)),
		DatasetPath:      getEnv("DATASET_PATH", "data/AtropellosGS2015.csv"),
		DatasetEncoding:  strings.ToLower(getEnv("DATASET_ENCODING", "utf-8")),
		DatasetLatColumn: getEnv("DATASET_LAT_COLUMN", "X"),
		DatasetLonColumn: getEnv("DATASET_LON_COLUMN", "Y"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		CacheTTL:         getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		MapZoom:          getEnvAsInt("MAP_ZOOM", 9),
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DatasetSource {
	case SourceCSV:
		if c.DatasetPath == "" {
			return fmt.Errorf("DATASET_PATH is required when DATASET_SOURCE=csv")
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DATASET_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("unsupported DATASET_SOURCE %q (expected csv or postgres)", c.DatasetSource)
	}

	switch c.DatasetEncoding {
	case "utf-8", "utf8", "latin1", "iso-8859-1":
	default:
		return fmt.Errorf("unsupported DATASET_ENCODING %q", c.DatasetEncoding)
	}

	if c.DatasetLatColumn == "" || c.DatasetLonColumn == "" {
		return fmt.Errorf("coordinate column names must not be empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
