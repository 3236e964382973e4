package config

import (
	"crypto/rsa"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environments recognised by APP_ENV.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Config is everything the api and ledgerctl read from the environment.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Invite    InviteConfig
	Recurring RecurringConfig
	AMQP      AMQPConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// AutoMigrate applies SQL migrations from MigrationsPath on startup;
	// when false the schema is created from the models instead.
	AutoMigrate    bool
	MigrationsPath string
	ReadyAttempts  int
	ReadyInterval  time.Duration
}

type JWTConfig struct {
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	PrivateKey           *rsa.PrivateKey
	PublicKey            *rsa.PublicKey
	Issuer               string
}

type SecurityConfig struct {
	BCryptCost          int
	RateLimitPerSecond  int
	RateLimitBurst      int
	PasswordMinLength   int
	RequireUppercase    bool
	RequireLowercase    bool
	RequireNumbers      bool
	RequireSpecialChars bool
}

type InviteConfig struct {
	MaxAttempts int
}

type RecurringConfig struct {
	ProcessorEnabled bool
	Interval         time.Duration
	BatchSize        int
}

// AMQPConfig configures the event publisher. An empty URL disables publishing.
type AMQPConfig struct {
	URL      string
	Exchange string
	Queue    string
}

// LoggingConfig selects the slog handler. Format is "text" (colored, for
// terminals) or "json".
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads the environment. JWT keys come from JWT_PRIVATE_KEY and
// JWT_PUBLIC_KEY; outside production a throwaway pair is generated when they
// are unset.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", EnvDevelopment),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			ReadyAttempts:   getIntEnv("DB_READY_ATTEMPTS", 30),
			ReadyInterval:   getDurationEnv("DB_READY_INTERVAL", 2*time.Second),
		},
		Security: SecurityConfig{
			BCryptCost:          getIntEnv("BCRYPT_COST", 12),
			RateLimitPerSecond:  getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:      getIntEnv("RATE_LIMIT_BURST", 10),
			PasswordMinLength:   getIntEnv("PASSWORD_MIN_LENGTH", 12),
			RequireUppercase:    getBoolEnv("PASSWORD_REQUIRE_UPPERCASE", true),
			RequireLowercase:    getBoolEnv("PASSWORD_REQUIRE_LOWERCASE", true),
			RequireNumbers:      getBoolEnv("PASSWORD_REQUIRE_NUMBERS", true),
			RequireSpecialChars: getBoolEnv("PASSWORD_REQUIRE_SPECIAL", true),
		},
		JWT: JWTConfig{
			AccessTokenDuration:  getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 24*time.Hour),
			RefreshTokenDuration: getDurationEnv("JWT_REFRESH_TOKEN_DURATION", 7*24*time.Hour),
			Issuer:               getEnv("JWT_ISSUER", "group-ledger"),
		},
		Invite: InviteConfig{
			MaxAttempts: getIntEnv("INVITE_KEY_MAX_ATTEMPTS", 20),
		},
		Recurring: RecurringConfig{
			ProcessorEnabled: getBoolEnv("RECURRING_PROCESSOR_ENABLED", false),
			Interval:         getDurationEnv("RECURRING_PROCESSOR_INTERVAL", time.Hour),
			BatchSize:        getIntEnv("RECURRING_PROCESSOR_BATCH_SIZE", 100),
		},
		AMQP: AMQPConfig{
			URL:      getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "ledger.events"),
			Queue:    getEnv("AMQP_QUEUE", "ledger.transactions"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	cfg.Server.CORSAllowOrigins = splitList(getEnv("CORS_ALLOW_ORIGINS", "*"))

	keys, err := loadSigningKeys(cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("loading JWT keys: %w", err)
	}
	cfg.JWT.PrivateKey, cfg.JWT.PublicKey = keys.private, keys.public
	return cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool { return c.Server.Environment == EnvDevelopment }
func (c *Config) IsProduction() bool  { return c.Server.Environment == EnvProduction }
func (c *Config) IsTesting() bool     { return c.Server.Environment == EnvTesting }

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// parsedEnv returns fallback when key is unset or does not parse.
func parsedEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring malformed environment value", "key", key, "value", raw, "error", err)
		return fallback
	}
	return v
}

func getIntEnv(key string, fallback int) int {
	return parsedEnv(key, fallback, strconv.Atoi)
}

func getBoolEnv(key string, fallback bool) bool {
	return parsedEnv(key, fallback, strconv.ParseBool)
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	return parsedEnv(key, fallback, time.ParseDuration)
}

// splitList splits a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
