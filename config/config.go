package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the X-ray education service
type Config struct {
	// Server configuration
	Port string

	// LLM provider configuration
	LLMProvider  string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	LLMTimeout   time.Duration

	// Image preparation configuration
	MaxImageDimension int

	// Database configuration. Leaving DB_HOST empty disables the learner
	// progress store; the rest of the service runs without it.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Session token configuration
	JWTSecret string
	TokenTTL  time.Duration

	// Report email delivery. Leaving SENDGRID_API_KEY empty disables it.
	SendGridAPIKey    string
	SendGridFromName  string
	SendGridFromEmail string

	// Rate limiting for analysis endpoints
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables
func Load() *Config {
	config := &Config{
		// Server defaults
		Port: getEnv("PORT", "8080"),

		// LLM defaults
		LLMProvider:  getEnv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o"),
		LLMTimeout:   getDurationEnv("LLM_TIMEOUT", 90*time.Second),

		// Image preparation defaults
		MaxImageDimension: getIntEnv("MAX_IMAGE_DIMENSION", 1024),

		// Database defaults
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "server"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "xray_education"),

		// Session token defaults (30 days)
		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getDurationEnv("TOKEN_TTL", 30*24*time.Hour),

		// Email defaults
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "X-Ray Education"),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),

		// Rate limiting defaults
		RateLimitRequests: getIntEnv("RATE_LIMIT_REQUESTS", 30),
		RateLimitWindow:   getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),

		// Logging defaults
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return config
}

// ProgressEnabled reports whether the learner progress store is configured
func (c *Config) ProgressEnabled() bool {
	return c.DBHost != ""
}

// SessionsEnabled reports whether learner session tokens can be issued
func (c *Config) SessionsEnabled() bool {
	return c.JWTSecret != ""
}

// EmailEnabled reports whether report email delivery is configured
func (c *Config) EmailEnabled() bool {
	return c.SendGridAPIKey != "" && c.SendGridFromEmail != ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getIntEnv gets an integer environment variable or returns a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
