package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Redis      RedisConfig
	Server     ServerConfig
	Catalog    CatalogConfig
	Logging    LoggingConfig
	OpenAI     OpenAIConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, preferred over the parts below
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	Enabled            bool
}

// RedisConfig holds the favorite store configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	FavoritesKey string
	Enabled      bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// CatalogConfig holds browsing limits shared by the filter engine and the API
type CatalogConfig struct {
	PageSize       int
	PriceDomainMax float64
	MinPriceGap    float64
	MaxCompare     int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// OpenAIConfig holds OpenAI-compatible API configuration for the filter oracle
type OpenAIConfig struct {
	APIKey          string
	APIBase         string
	ChatModel       string
	ChatTemperature float64
	ChatTopP        float64
	ChatMaxTokens   int
	ChatExtraBody   string // JSON string for extra_body (e.g., {"chat_template_kwargs":{"thinking":true}})
	Timeout         int
	Enabled         bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", ""),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "property_finder"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
		},
		Redis: RedisConfig{
			Addr:         getEnv("REDIS_ADDR", ""),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			FavoritesKey: getEnv("REDIS_FAVORITES_KEY", "favoriteProperties"),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,PATCH,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Catalog: CatalogConfig{
			PageSize:       getEnvAsInt("CATALOG_PAGE_SIZE", 9),
			PriceDomainMax: getEnvAsFloat("CATALOG_PRICE_MAX", 50000),
			MinPriceGap:    getEnvAsFloat("CATALOG_MIN_PRICE_GAP", 1000),
			MaxCompare:     getEnvAsInt("CATALOG_MAX_COMPARE", 3),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		OpenAI: OpenAIConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			APIBase:         getEnv("OPENAI_API_BASE", "https://integrate.api.nvidia.com/v1"),
			ChatModel:       getEnv("OPENAI_CHAT_MODEL", "deepseek-ai/deepseek-v3.1-terminus"),
			ChatTemperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.2),
			ChatTopP:        getEnvAsFloat("OPENAI_CHAT_TOP_P", 0.7),
			ChatMaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 1024),
			ChatExtraBody:   getEnv("OPENAI_CHAT_EXTRA_BODY", ""),
			Timeout:         getEnvAsInt("OPENAI_TIMEOUT", 30),
		},
	}

	cfg.PostgreSQL.Enabled = cfg.PostgreSQL.DSN != "" || cfg.PostgreSQL.Host != ""
	cfg.Redis.Enabled = getEnvAsBool("REDIS_ENABLED", cfg.Redis.Addr != "")
	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	cfg.OpenAI.Enabled = cfg.OpenAI.APIKey != ""

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the filter engine relies on
func (c *Config) Validate() error {
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive, got %d", c.Catalog.PageSize)
	}
	if c.Catalog.PriceDomainMax <= 0 {
		return fmt.Errorf("CATALOG_PRICE_MAX must be positive, got %f", c.Catalog.PriceDomainMax)
	}
	if c.Catalog.MinPriceGap < 0 || c.Catalog.MinPriceGap >= c.Catalog.PriceDomainMax {
		return fmt.Errorf("CATALOG_MIN_PRICE_GAP must be in [0, %f), got %f", c.Catalog.PriceDomainMax, c.Catalog.MinPriceGap)
	}
	if c.Catalog.MaxCompare <= 0 {
		return fmt.Errorf("CATALOG_MAX_COMPARE must be positive, got %d", c.Catalog.MaxCompare)
	}
	return nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// AllowedMethodList splits the CORS method setting
func (s ServerConfig) AllowedMethodList() []string {
	return splitList(s.AllowedMethods)
}

// AllowedHeaderList splits the CORS header setting
func (s ServerConfig) AllowedHeaderList() []string {
	return splitList(s.AllowedHeaders)
}

// IsDebug reports whether [DEBUG] log lines should be written
func (l LoggingConfig) IsDebug() bool {
	return strings.EqualFold(l.Level, "debug")
}

// Helper functions

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

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
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
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
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}
