package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/redditage/internal/profile/service"
	"github.com/aussiebroadwan/redditage/pkg/httpx"
	"github.com/aussiebroadwan/redditage/pkg/redditsdk"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	RedditClientID     string        `validate:"required"`     // Required: Reddit app client id
	RedditClientSecret string        `validate:"required"`     // Required: Reddit app client secret
	RedditUserAgent    string        `validate:"required"`     // Required: descriptive User-Agent Reddit demands
	RedditTokenURL     string        `validate:"required,url"` // Optional: token endpoint (default: Reddit production)
	RedditAPIBaseURL   string        `validate:"required,url"` // Optional: API host (default: https://oauth.reddit.com)
	UpstreamTimeout    time.Duration `validate:"gt=0"`         // Optional: timeout per Reddit call (default: 5s)
	TokenExpiryBuffer  time.Duration `validate:"gte=0"`        // Optional: subtracted from token lifetime (default: 10s)

	CORSAllowedOrigins []string              // Optional: comma-separated origins (default: *)
	RateLimitEnabled   bool                  // Optional: throttle /api/ per address (default: true)
	APILimit           httpx.RateLimitConfig // Optional: RATELIMIT_API_* (default: 60 per minute)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           `validate:"gt=0,lte=65535"` // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		RedditClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		RedditClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		RedditUserAgent:    os.Getenv("REDDIT_USER_AGENT"),
		RedditTokenURL:     getEnvOrDefault("REDDIT_TOKEN_URL", redditsdk.DefaultTokenURL),
		RedditAPIBaseURL:   getEnvOrDefault("REDDIT_API_BASE_URL", redditsdk.DefaultAPIBaseURL),
		UpstreamTimeout:    getEnvDurationOrDefault("REDDIT_TIMEOUT", service.DefaultUpstreamTimeout),
		TokenExpiryBuffer:  getEnvDurationOrDefault("REDDIT_TOKEN_EXPIRY_BUFFER", service.DefaultExpiryBuffer),

		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitEnabled:   getEnvBoolOrDefault("RATE_LIMIT_ENABLED", true),
		APILimit:           httpx.ParseRateLimitFromEnv("API", httpx.APILimit),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate reports missing credentials and out of range settings.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "5s", "1m")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
