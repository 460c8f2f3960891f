package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Fixed by the deployment contract; not configurable.
const (
	DatabaseName   = "test_db"
	MongoPort      = 27017
	CollectionName = "collection"
	FetchLimit     = 100
)

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	App       AppConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type MongoConfig struct {
	User     string
	Password string
	Host     string
}

// DatabaseConfig configures the Postgres store used when STORE_BACKEND=postgres.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type AppConfig struct {
	Environment   string
	LogLevel      string
	Version       string
	StoreBackend  string
	ProbeSchedule string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		},
		Mongo: MongoConfig{
			User:     getEnv("MONGO_USER", "admin"),
			Password: getEnv("MONGO_PASS", "password"),
			Host:     getEnv("MONGO_HOST", "mongodb-0.mongodb-service"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", DatabaseName),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvAsFloat("RATE_LIMIT_RPS", 0),
			Burst: getEnvAsInt("RATE_LIMIT_BURST", 0),
		},
		App: AppConfig{
			Environment:   getEnv("APP_ENV", "development"),
			LogLevel:      getEnv("LOG_LEVEL", "info"),
			Version:       getEnv("APP_VERSION", "1.0.0"),
			StoreBackend:  strings.ToLower(getEnv("STORE_BACKEND", BackendMongo)),
			ProbeSchedule: getEnv("PROBE_SCHEDULE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.App.StoreBackend {
	case BackendMongo:
		if c.Mongo.Host == "" {
			return fmt.Errorf("MONGO_HOST is required")
		}
	case BackendPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.App.StoreBackend)
	}

	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}

	return nil
}

// URI renders mongodb://{user}:{pass}@{host}:27017. Credentials are
// percent-encoded only where RFC 3986 requires it.
func (m MongoConfig) URI() string {
	u := url.URL{
		Scheme: "mongodb",
		User:   url.UserPassword(m.User, m.Password),
		Host:   net.JoinHostPort(m.Host, strconv.Itoa(MongoPort)),
	}
	return u.String()
}

// Redacted is URI with the password masked, for logs.
func (m MongoConfig) Redacted() string {
	u := url.URL{
		Scheme: "mongodb",
		User:   url.UserPassword(m.User, "xxxxx"),
		Host:   net.JoinHostPort(m.Host, strconv.Itoa(MongoPort)),
	}
	return u.String()
}

func (c *Config) EventsEnabled() bool {
	return c.Redis.Addr != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
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
		log.Printf("Warning: Invalid number for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string) []string {
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
