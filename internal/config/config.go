package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken   string
	MongoURI   string
	RedisURL   string
	WebsiteURL string
	ServerPort string
	AdminPhone string
	AdminUser  string
}

// LoadConfig подгружает переменные окружения из .env.
// Отсутствие токена бота или адресов хранилищ — фатальная ошибка старта.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		MongoURI:   os.Getenv("MONGO_URI"),
		RedisURL:   os.Getenv("REDIS_URL"),
		WebsiteURL: getEnv("WEBSITE_URL", "http://localhost:5173"),
		ServerPort: getEnv("SERVER_PORT", ":8080"),
		AdminPhone: getEnv("ADMIN_PHONE", "+998 90 123 45 67"),
		AdminUser:  getEnv("ADMIN_USERNAME", "@ajabo_admin"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
