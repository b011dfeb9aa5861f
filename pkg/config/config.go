package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage drivers understood by the KV store factory.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Storage       StorageConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Admin         AdminConfig
	CORS          CORSConfig
	Log           LogConfig
	School        SchoolConfig
	Forms         FormsConfig
	Notifications NotificationConfig
	Exports       ExportsConfig
	Search        SearchConfig
}

// StorageConfig selects the key/value backend holding the site documents.
type StorageConfig struct {
	Driver     string
	SQLitePath string
	KeyPrefix  string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// AdminConfig holds the single site administrator account.
type AdminConfig struct {
	Email        string
	Name         string
	PasswordHash string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SchoolConfig describes the public identity used in mail handoffs and SEO output.
type SchoolConfig struct {
	Name        string
	BaseURL     string
	MailTo      string
	NotifyEmail string
}

// FormsConfig tunes the form orchestrator.
type FormsConfig struct {
	DefinitionsFile        string
	DraftTTL               time.Duration
	DraftSweepInterval     time.Duration
	ValidationLogSize      int
	MailHandoffDelay       time.Duration
	ClipboardFallbackDelay time.Duration
	RedirectDelay          time.Duration
	SuccessBannerTTL       time.Duration
	ErrorBannerTTL         time.Duration
}

// NotificationConfig controls staff notification mail for accepted submissions.
type NotificationConfig struct {
	Enabled        bool
	Driver         string
	SendgridAPIKey string
	FromEmail      string
	FromName       string
	Workers        int
	Retries        int
}

// ExportsConfig controls where submission exports land and how downloads are signed.
type ExportsConfig struct {
	StorageDir      string
	SignedURLSecret string
	SignedURLTTL    time.Duration
}

type SearchConfig struct {
	AnalyticsSize  int
	MaxQueryLength int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Storage = StorageConfig{
		Driver:     strings.ToLower(v.GetString("STORAGE_DRIVER")),
		SQLitePath: v.GetString("SQLITE_PATH"),
		KeyPrefix:  v.GetString("STORAGE_KEY_PREFIX"),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 12*time.Hour),
	}

	cfg.Admin = AdminConfig{
		Email:        v.GetString("ADMIN_EMAIL"),
		Name:         v.GetString("ADMIN_NAME"),
		PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.School = SchoolConfig{
		Name:        v.GetString("SCHOOL_NAME"),
		BaseURL:     strings.TrimRight(v.GetString("SCHOOL_BASE_URL"), "/"),
		MailTo:      v.GetString("SCHOOL_MAIL_TO"),
		NotifyEmail: v.GetString("SCHOOL_NOTIFY_EMAIL"),
	}

	cfg.Forms = FormsConfig{
		DefinitionsFile:        v.GetString("FORMS_DEFINITIONS_FILE"),
		DraftTTL:               parseDuration(v.GetString("FORMS_DRAFT_TTL"), 24*time.Hour),
		DraftSweepInterval:     parseDuration(v.GetString("FORMS_DRAFT_SWEEP_INTERVAL"), time.Hour),
		ValidationLogSize:      positiveOr(v.GetInt("FORMS_VALIDATION_LOG_SIZE"), 100),
		MailHandoffDelay:       parseDuration(v.GetString("FORMS_MAIL_HANDOFF_DELAY"), 1500*time.Millisecond),
		ClipboardFallbackDelay: parseDuration(v.GetString("FORMS_CLIPBOARD_FALLBACK_DELAY"), 2*time.Second),
		RedirectDelay:          parseDuration(v.GetString("FORMS_REDIRECT_DELAY"), 3*time.Second),
		SuccessBannerTTL:       parseDuration(v.GetString("FORMS_SUCCESS_BANNER_TTL"), 3*time.Second),
		ErrorBannerTTL:         parseDuration(v.GetString("FORMS_ERROR_BANNER_TTL"), 5*time.Second),
	}

	cfg.Notifications = NotificationConfig{
		Enabled:        v.GetBool("NOTIFY_ENABLED"),
		Driver:         strings.ToLower(v.GetString("NOTIFY_DRIVER")),
		SendgridAPIKey: v.GetString("SENDGRID_API_KEY"),
		FromEmail:      v.GetString("NOTIFY_FROM_EMAIL"),
		FromName:       v.GetString("NOTIFY_FROM_NAME"),
		Workers:        positiveOr(v.GetInt("NOTIFY_WORKERS"), 1),
		Retries:        positiveOr(v.GetInt("NOTIFY_RETRIES"), 3),
	}

	cfg.Exports = ExportsConfig{
		StorageDir:      v.GetString("EXPORTS_STORAGE_DIR"),
		SignedURLSecret: v.GetString("EXPORTS_SIGNED_URL_SECRET"),
		SignedURLTTL:    parseDuration(v.GetString("EXPORTS_SIGNED_URL_TTL"), 30*time.Minute),
	}

	cfg.Search = SearchConfig{
		AnalyticsSize:  positiveOr(v.GetInt("SEARCH_ANALYTICS_SIZE"), 100),
		MaxQueryLength: positiveOr(v.GetInt("SEARCH_MAX_QUERY_LENGTH"), 100),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORAGE_DRIVER", StorageSQLite)
	v.SetDefault("SQLITE_PATH", "./data/pips.db")
	v.SetDefault("STORAGE_KEY_PREFIX", "")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "pips_site")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "12h")
	v.SetDefault("ADMIN_EMAIL", "pinetownindependentprimary@gmail.com")
	v.SetDefault("ADMIN_NAME", "Site Administrator")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SCHOOL_NAME", "Pinetown Independent Primary School")
	v.SetDefault("SCHOOL_BASE_URL", "http://localhost:8080")
	v.SetDefault("SCHOOL_MAIL_TO", "info@pinetownindependent.co.za")
	v.SetDefault("SCHOOL_NOTIFY_EMAIL", "pinetownindependentprimary@gmail.com")

	v.SetDefault("FORMS_DEFINITIONS_FILE", "")
	v.SetDefault("FORMS_DRAFT_TTL", "24h")
	v.SetDefault("FORMS_DRAFT_SWEEP_INTERVAL", "1h")
	v.SetDefault("FORMS_VALIDATION_LOG_SIZE", 100)
	v.SetDefault("FORMS_MAIL_HANDOFF_DELAY", "1500ms")
	v.SetDefault("FORMS_CLIPBOARD_FALLBACK_DELAY", "2s")
	v.SetDefault("FORMS_REDIRECT_DELAY", "3s")
	v.SetDefault("FORMS_SUCCESS_BANNER_TTL", "3s")
	v.SetDefault("FORMS_ERROR_BANNER_TTL", "5s")

	v.SetDefault("NOTIFY_ENABLED", true)
	v.SetDefault("NOTIFY_DRIVER", "log")
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("NOTIFY_FROM_EMAIL", "no-reply@pinetownindependent.co.za")
	v.SetDefault("NOTIFY_FROM_NAME", "PIPS Website")
	v.SetDefault("NOTIFY_WORKERS", 1)
	v.SetDefault("NOTIFY_RETRIES", 3)

	v.SetDefault("EXPORTS_STORAGE_DIR", "./exports")
	v.SetDefault("EXPORTS_SIGNED_URL_SECRET", "dev_exports_secret")
	v.SetDefault("EXPORTS_SIGNED_URL_TTL", "30m")

	v.SetDefault("SEARCH_ANALYTICS_SIZE", 100)
	v.SetDefault("SEARCH_MAX_QUERY_LENGTH", 100)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func positiveOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
