package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// API Configuration
	APIPort        string
	APIHost        string
	APIEnvironment string

	// Seed data
	Seed          int64
	SeedLeadCount int

	// Redis
	RedisURL        string
	InsightCacheTTL time.Duration

	// AI content suggestions
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OpenAIModel    string
	InsightTimeout time.Duration

	// Event publishing
	AMQPURL         string
	EventBufferSize int

	// Sentry
	SentryDSN         string
	SentryEnvironment string
	SentryDebug       bool

	// CORS
	CORSAllowedOrigins []string

	// Rate Limiting
	RateLimitRequestsPerMinute int
	RateLimitBurst             int
	InsightRateLimitPerMinute  int

	// Jobs
	FollowUpCron string
	StatsCron    string

	// Exports
	PhoneRegion string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables, after reading an
// optional .env file from the working directory.
func Load() *Config {
	_ = godotenv.Load()

	environment := getEnv("API_ENVIRONMENT", "development")

	return &Config{
		// API
		APIPort:        getEnv("API_PORT", "8080"),
		APIHost:        getEnv("API_HOST", "0.0.0.0"),
		APIEnvironment: environment,

		// Seed
		Seed:          int64(getEnvAsInt("SEED", 42)),
		SeedLeadCount: getEnvAsInt("SEED_LEAD_COUNT", 50),

		// Redis (empty disables the insight cache)
		RedisURL:        getEnv("REDIS_URL", ""),
		InsightCacheTTL: getEnvAsDuration("INSIGHT_CACHE_TTL", 24*time.Hour),

		// AI (empty key selects the template suggester)
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", ""),
		InsightTimeout: getEnvAsDuration("INSIGHT_TIMEOUT", 30*time.Second),

		// Events (empty disables publishing)
		AMQPURL:         getEnv("AMQP_URL", ""),
		EventBufferSize: getEnvAsInt("EVENT_BUFFER_SIZE", 256),

		// Sentry
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", environment),
		SentryDebug:       getEnvAsBool("SENTRY_DEBUG", false),

		// CORS
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),

		// Rate Limiting
		RateLimitRequestsPerMinute: getEnvAsInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 120),
		RateLimitBurst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
		InsightRateLimitPerMinute:  getEnvAsInt("INSIGHT_RATE_LIMIT_PER_MINUTE", 10),

		// Jobs
		FollowUpCron: getEnv("FOLLOWUP_CRON", "*/15 * * * *"),
		StatsCron:    getEnv("STATS_CRON", "0 4 * * *"),

		// Exports
		PhoneRegion: getEnv("PHONE_REGION", "US"),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// IsProduction reports whether the API runs in production.
func (c *Config) IsProduction() bool {
	return c.APIEnvironment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
