package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	CORSOrigin  string

	GitHubAPIBase string
	GitHubToken   string

	ResendAPIKey      string
	ResendAPIBase     string
	NotificationEmail string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "*"),
		GitHubAPIBase:     getEnv("GITHUB_API_BASE", "https://api.github.com"),
		GitHubToken:       os.Getenv("GITHUB_TOKEN"),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		ResendAPIBase:     getEnv("RESEND_API_BASE", "https://api.resend.com"),
		NotificationEmail: os.Getenv("CONTACT_NOTIFICATION_EMAIL"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
