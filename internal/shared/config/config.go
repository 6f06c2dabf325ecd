package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	Port            string
	Env             string
	JWTSecret       string
	OverdueScanSpec string
	ExportMaxRows   int
	AdminEmail      string
	AdminPassword   string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Port:            os.Getenv("PORT"),
		Env:             os.Getenv("ENV"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		OverdueScanSpec: os.Getenv("OVERDUE_SCAN_CRON"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}
	if cfg.OverdueScanSpec == "" {
		// Daily at 06:00, before the payments team starts the day
		cfg.OverdueScanSpec = "0 6 * * *"
	}

	cfg.ExportMaxRows = envInt("EXPORT_MAX_ROWS", 5000)

	return cfg
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return n
}
