package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret is returned when no signing key is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY is required")

// Config is the application configuration. It is built once at startup and
// must not be modified afterwards.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Geocoder GeocoderConfig
}

// AppConfig holds HTTP server settings.
type AppConfig struct {
	Host     string
	Port     string
	LogLevel string
	BasePath string // Prefix for all API routes, e.g. /api
}

// Addr returns host:port for the HTTP listener.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// PostgresConfig holds database connection settings.
type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the connection string for the pgx driver.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

// RedisConfig holds cache settings. An empty Host disables the cache.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

// Enabled reports whether a Redis host is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Addr returns host:port of the Redis server.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	SecretKey string
	Exp       time.Duration
}

// CORSConfig holds the cross-origin allow-list.
type CORSConfig struct {
	AllowedOrigins []string
}

// GeocoderConfig holds settings of the place search upstream.
type GeocoderConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

// Load reads environment variables, optionally seeded from the file at path,
// and returns the resulting configuration.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	cfg.App = AppConfig{
		Host:     getEnv("APP_HOST", "localhost"),
		Port:     getEnv("APP_PORT", "5000"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),
		BasePath: "/" + strings.Trim(getEnv("APP_BASE_PATH", "/api"), "/"),
	}

	cfg.Postgres = PostgresConfig{
		Host:     getEnv("POSTGRES_HOST", "localhost"),
		User:     getEnv("POSTGRES_USER", "user"),
		Password: getEnv("POSTGRES_PASSWORD", "password"),
		DB:       getEnv("POSTGRES_DB", "wanderlist"),
	}
	if cfg.Postgres.Port, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
	}
	if cfg.Redis.Port, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.PoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Redis.MinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}

	cfg.JWT.SecretKey = getEnv("JWT_SECRET_KEY", "")
	if cfg.JWT.SecretKey == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.JWT.Exp, err = getEnvDuration("JWT_EXP", 7*24*time.Hour); err != nil {
		return nil, err
	}

	cfg.CORS.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"))

	cfg.Geocoder = GeocoderConfig{
		BaseURL:   strings.TrimRight(getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"), "/"),
		UserAgent: getEnv("GEOCODER_USER_AGENT", "wanderlist-api/1.0"),
	}
	if cfg.Geocoder.Timeout, err = getEnvDuration("GEOCODER_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.Geocoder.CacheTTL, err = getEnvDuration("GEOCODER_CACHE_TTL", time.Hour); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	val := getEnv(key, "")
	if val == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
