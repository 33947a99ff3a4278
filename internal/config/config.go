package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	AppEnv             string
	Port               string
	LogLevel           string
	LogPretty          bool
	JWTSecret          string
	TokenTTL           time.Duration
	AllowedOrigins     string
	APIPassphrase      string
	AccountNumberStart int
	HistoryPageSize    int
}

const devSecret = "dev-secret-change-me"

func Load() Config {
	appEnv := getEnv("APP_ENV", "development")
	return Config{
		AppEnv:             appEnv,
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogPretty:          getBool("LOG_PRETTY", appEnv == "development"),
		JWTSecret:          getEnv("JWT_SECRET", devSecret),
		TokenTTL:           getDuration("TOKEN_TTL_MINUTES", 60),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "*"),
		APIPassphrase:      os.Getenv("API_PASSPHRASE"),
		AccountNumberStart: getInt("ACCOUNT_NUMBER_START", 1000),
		HistoryPageSize:    getInt("HISTORY_PAGE_SIZE", 10),
	}
}

// Validate reports every problem at once. The HTTP-only settings are checked
// when server is true.
func (c Config) Validate(server bool) error {
	var problems []string

	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}
	if c.AccountNumberStart < 0 {
		problems = append(problems, fmt.Sprintf("invalid account number start %d: must not be negative", c.AccountNumberStart))
	}
	if c.HistoryPageSize < 1 {
		problems = append(problems, fmt.Sprintf("invalid history page size %d: must be at least 1", c.HistoryPageSize))
	}

	if server {
		if port, err := strconv.Atoi(c.Port); err != nil {
			problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
		} else if port < 1 || port > 65535 {
			problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
		}
		if c.TokenTTL <= 0 {
			problems = append(problems, "token TTL must be positive")
		}
		if c.APIPassphrase == "" {
			problems = append(problems, "API_PASSPHRASE is required to serve the API")
		}
		if c.AppEnv == "production" && c.JWTSecret == devSecret {
			problems = append(problems, "JWT_SECRET must be set in production")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) int {
	parsed, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func getBool(key string, fallback bool) bool {
	parsed, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallbackMinutes int) time.Duration {
	return time.Duration(getInt(key, fallbackMinutes)) * time.Minute
}
