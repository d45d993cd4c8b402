package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string
	Env  string

	// Database. When DBHost is empty the server falls back to a local
	// sqlite file named DBName.
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Admin identity checked by the admin middleware. The password may be
	// a bcrypt hash.
	AdminEmail    string
	AdminPassword string

	// Review submission rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Notification channels
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPass       string
	SendGridAPIKey string
	WebhookURL     string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("APP_ENV", "development"),

		DBHost:     getEnv("DB_HOST", ""),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "reviews.db"),
		DBPort:     getEnv("DB_PORT", "5432"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX_REQUESTS", 3),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MS", 900000)) * time.Millisecond,

		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		WebhookURL:     getEnv("WEBHOOK_URL", ""),
	}

	// Validate critical configuration
	if AppConfig.AdminPassword == "admin123" {
		log.Println("Warning: Using default ADMIN_PASSWORD. Update it in your environment.")
	}
	if AppConfig.DBHost == "" {
		log.Printf("Warning: DB_HOST not set. Using local sqlite database %q.", AppConfig.DBName)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
