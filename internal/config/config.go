package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DBHost     string
	DBName     string
	DBUser     string
	DBPassword string
	DBPort     string

	TelegramBotToken string
	TelegramChatID   string

	SecretKey string
	Debug     bool

	Port           string
	StaticDir      string
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS, comma-separated
}

func Load() *Config {
	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBName:     getEnv("DB_NAME", "webmaster_db"),
		DBUser:     getEnv("DB_USER", "webmaster_user"),
		DBPassword: getEnv("DB_PASSWORD", "webmaster_password"),
		DBPort:     getEnv("DB_PORT", "5432"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),

		SecretKey: getEnv("SECRET_KEY", "dev-secret-key-change-in-production"),
		Debug:     strings.ToLower(strings.TrimSpace(getEnv("DEBUG", "false"))) == "true",

		Port:           getEnv("PORT", "5000"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		AllowedOrigins: allowedOrigins,
	}
}

// PostgresDSN assembles the lib/pq connection string from the DB_* settings.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// NotifierEnabled returns true when both Telegram credentials are configured.
func (c *Config) NotifierEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
