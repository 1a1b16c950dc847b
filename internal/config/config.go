package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppPort        string
	AppName        string
	AppVersion     string
	APIBasePath    string
	GinMode        string
	TrustedProxies []string

	DbDriver          string
	DbDSN             string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	PostgresURL       string
	SQLitePath        string
	DbMaxOpenConns    int
	DbMaxIdleConns    int
	DbConnMaxLifetime time.Duration
	AutoMigrate       bool

	DefaultPageSize int
	MaxPageSize     int

	TranslationFolder string
	EnableDiagnostics bool

	Log LogConfig
}

type LogConfig struct {
	Level      string
	Format     string
	Output     string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		AppName:        getEnv("APP_NAME", "tasktracker"),
		AppVersion:     getEnv("APP_VERSION", "dev"),
		APIBasePath:    normalizeBasePath(getEnv("API_BASE_PATH", "")),
		GinMode:        getEnv("GIN_MODE", "release"),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES")),

		DbDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DbDSN:             getEnv("DB_DSN", ""),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "tasktracker"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "tasktracker"),
		DbName:            getEnv("MYSQL_DATABASE", "tasktracker"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&loc=UTC"),
		PostgresURL:       getEnv("POSTGRES_URL", "postgres://tasktracker:tasktracker@db:5432/tasktracker?sslmode=disable"),
		SQLitePath:        getEnv("SQLITE_PATH", "data/tasktracker.db"),
		DbMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DbMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DbConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		AutoMigrate:       getEnvBool("AUTO_MIGRATE", true),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),

		TranslationFolder: getEnv("TRANSLATION_FOLDER", ""),
		EnableDiagnostics: getEnvBool("ENABLE_DIAGNOSTICS", false),

		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func normalizeBasePath(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == "/" {
		return ""
	}
	if !strings.HasPrefix(value, "/") {
		value = "/" + value
	}
	return strings.TrimRight(value, "/")
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
