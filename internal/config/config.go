package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Portal is the terminal client configuration.
type Portal struct {
	BaseURL   string
	Timeout   time.Duration
	TokenPath string // "" means the tokenstore default location
}

// DevServer is the local development API server configuration.
type DevServer struct {
	Port             int
	Env              string
	LogLevel         string
	JWTSecret        string
	AccessExpiration string
	StorageBasePath  string
	StorageBaseURL   string
}

// LoadPortal reads the client configuration from the environment, with a
// .env file as optional overlay.
func LoadPortal() (*Portal, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("PORTAL_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORTAL_TIMEOUT: %w", err)
	}

	cfg := &Portal{
		BaseURL:   getEnv("PORTAL_BASE_URL", "https://vy-backend.onrender.com"),
		Timeout:   timeout,
		TokenPath: getEnv("PORTAL_TOKEN_PATH", ""),
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("PORTAL_BASE_URL is required")
	}
	return cfg, nil
}

// LoadDevServer reads the development server configuration.
func LoadDevServer() (*DevServer, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("DEV_SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEV_SERVER_PORT: %w", err)
	}

	cfg := &DevServer{
		Port:             port,
		Env:              getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		JWTSecret:        getEnv("JWT_SECRET_KEY", "vy-dev-secret"),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
		StorageBasePath:  getEnv("STORAGE_BASE_PATH", "./uploads"),
		StorageBaseURL:   getEnv("STORAGE_BASE_URL", fmt.Sprintf("http://localhost:%s/uploads", getEnv("DEV_SERVER_PORT", "8080"))),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(cfg.AccessExpiration); err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
