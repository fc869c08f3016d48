package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// StoreAPIURL is the base URL of the storefront backend (cart and
	// catalog endpoints).
	StoreAPIURL string

	HTTPTimeout time.Duration
}

func Load() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StoreAPIURL: getEnv("STORE_API_URL", "http://localhost:8082"),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_MS", 5000)) * time.Millisecond,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
