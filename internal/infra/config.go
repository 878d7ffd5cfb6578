package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultIngestAPIKey is the development fallback for the in-game secret.
// Deployments must override INGAME_API_KEY.
const DefaultIngestAPIKey = "change-this-secret"

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv              string
	Port                string
	IngestAPIKey        string
	DiscordToken        string
	RobloxAPIBaseURL    string
	RobloxPassesBaseURL string
	AllowedOrigins      []string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
	RateLimitPerMin     int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "3000"),
		IngestAPIKey:        getEnv("INGAME_API_KEY", DefaultIngestAPIKey),
		DiscordToken:        os.Getenv("DISCORD_TOKEN"),
		RobloxAPIBaseURL:    getEnv("ROBLOX_API_BASE_URL", "https://apis.roblox.com"),
		RobloxPassesBaseURL: getEnv("ROBLOX_GAMEPASSES_BASE_URL", "https://apis.roblox.com/game-passes/v1"),
		AllowedOrigins:      splitEnv("ALLOWED_ORIGINS"),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:     getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
