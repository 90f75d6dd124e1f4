package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Gate      GateConfig
	Storage   StorageConfig
	Hydration HydrationConfig
	Turnstile TurnstileConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	StaticDir          string
	EventTopic         string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret         string
	SessionCookieName string
	DevTokenTTL       time.Duration
}

type GateConfig struct {
	Locales          []string
	DefaultLocale    string
	LocaleCookieName string
	EntryPath        string
	ExtraPublicPaths []string
}

type StorageConfig struct {
	Driver       string // "http" or "disk"
	BaseURL      string
	ServiceKey   string
	Bucket       string
	DiskRoot     string
	SignedURLTTL time.Duration
	HTTPTimeout  time.Duration
}

type HydrationConfig struct {
	Timeout           time.Duration
	AvatarConcurrency int
	StateTTL          time.Duration
}

type TurnstileConfig struct {
	SecretKey string
	VerifyURL string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/websocket.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			StaticDir:          getEnv("STATIC_DIR", "./web/dist"),
			EventTopic:         getEnv("EVENT_TOPIC", "workspace_events"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", ""),
			SessionCookieName: getEnv("SESSION_COOKIE_NAME", "session_token"),
			DevTokenTTL:       getEnvAsDuration("DEV_TOKEN_TTL", 24*time.Hour),
		},
		Gate: GateConfig{
			Locales:          getEnvAsList("LOCALES", []string{"en", "ru", "kk"}),
			DefaultLocale:    getEnv("DEFAULT_LOCALE", "en"),
			LocaleCookieName: getEnv("LOCALE_COOKIE_NAME", "NEXT_LOCALE"),
			EntryPath:        getEnv("ENTRY_PATH", "/login"),
			ExtraPublicPaths: getEnvAsList("EXTRA_PUBLIC_PATHS", nil),
		},
		Storage: StorageConfig{
			Driver:       getEnv("STORAGE_DRIVER", "http"),
			BaseURL:      getEnv("STORAGE_BASE_URL", "http://localhost:54321"),
			ServiceKey:   getEnv("STORAGE_SERVICE_KEY", ""),
			Bucket:       getEnv("STORAGE_ASSISTANT_BUCKET", "assistant-images"),
			DiskRoot:     getEnv("STORAGE_DISK_ROOT", "./uploads"),
			SignedURLTTL: getEnvAsDuration("STORAGE_SIGNED_URL_TTL", 24*time.Hour),
			HTTPTimeout:  getEnvAsDuration("STORAGE_HTTP_TIMEOUT", 10*time.Second),
		},
		Hydration: HydrationConfig{
			Timeout:           getEnvAsDuration("HYDRATION_TIMEOUT", 30*time.Second),
			AvatarConcurrency: getEnvAsInt("AVATAR_CONCURRENCY", 4),
			StateTTL:          getEnvAsDuration("STATE_TTL", time.Hour),
		},
		Turnstile: TurnstileConfig{
			SecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
			VerifyURL: getEnv("TURNSTILE_VERIFY_URL", "https://challenges.cloudflare.com/turnstile/v0/siteverify"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("30s", "1h").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated value, dropping empty items.
func getEnvAsList(key string, fallback []string) []string {
	strValue, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(strValue, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
