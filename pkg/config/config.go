package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AppEnv         string
	DatabaseURL    string
	SendGridAPIKey string
	SenderEmail    string
	SenderName     string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "3000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "info@hafezquraan.com"),
		SenderName:     getEnv("SENDER_NAME", "Hafez Quraan"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
