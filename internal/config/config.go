package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Source kinds accepted by SOURCE_KIND.
const (
	SourceSheet    = "sheet"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

const (
	DefaultSheetURL     = "https://docs.google.com/spreadsheets/d/1tHG9eTqzyOkl9HKAWo6RU3voBxCqnotx2_R8sfZ31jQ/export?format=csv"
	DefaultChatURL      = "https://api.openai.com/v1"
	DefaultChatModel    = "gpt-4"
	DefaultPassword     = "RGE2025"
	DefaultCacheTTL     = 60 * time.Second
	DefaultFetchTimeout = 30 * time.Second
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port string

	SourceKind   string
	SheetURL     string
	DatabaseURL  string
	DBPath       string
	FetchTimeout time.Duration
	CacheTTL     time.Duration

	Password string

	ChatAPIKey  string
	ChatBaseURL string
	ChatModel   string
	ChatTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// LoadDotEnv reads a .env file when present; its absence is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found (using environment variables)")
	}
}

// Load reads the .env file and returns a populated Config.
func Load() *Config {
	LoadDotEnv()

	return &Config{
		Port: Get("PORT", "8080"),

		SourceKind:   strings.ToLower(Get("SOURCE_KIND", SourceSheet)),
		SheetURL:     Get("SHEET_CSV_URL", DefaultSheetURL),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBPath:       Get("DB_PATH", "data/app.db"),
		FetchTimeout: GetDuration("HTTP_FETCH_TIMEOUT", DefaultFetchTimeout),
		CacheTTL:     GetDuration("CACHE_TTL", DefaultCacheTTL),

		Password: Get("DASHBOARD_PASSWORD", DefaultPassword),

		ChatAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		ChatBaseURL: Get("OPENAI_BASE_URL", DefaultChatURL),
		ChatModel:   Get("OPENAI_MODEL", DefaultChatModel),
		ChatTimeout: GetDuration("OPENAI_TIMEOUT", 60*time.Second),

		LogLevel:  Get("LOG_LEVEL", "info"),
		LogFormat: Get("LOG_FORMAT", "text"),
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetDuration accepts Go durations ("90s") or a bare number of seconds.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	logrus.WithField("key", key).Warn("ignoring invalid duration value")
	return fallback
}
