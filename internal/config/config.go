package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// ClusterHost is the Atlas cluster used when only credential parts are supplied.
const ClusterHost = "cluster0.scholarhub.mongodb.net"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	ServerPort  string
	CORSOrigins []string
	SwaggerHost string

	MongoURI            string
	MongoUser           string
	MongoPass           string
	MongoConnectTimeout time.Duration
	MongoSocketTimeout  time.Duration
	MongoMaxPoolSize    uint64
	DBRequired          bool

	StripeSecretKey string
	FallbackEnabled bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		ServerPort:  getEnv("PORT", "5000"),
		CORSOrigins: parseCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),

		MongoURI:            strings.TrimSpace(os.Getenv("MONGODB_URI")),
		MongoUser:           strings.TrimSpace(os.Getenv("DB_USER")),
		MongoPass:           strings.TrimSpace(os.Getenv("DB_PASS")),
		MongoConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", 5*time.Second),
		MongoSocketTimeout:  getEnvDuration("MONGO_SOCKET_TIMEOUT", 45*time.Second),
		MongoMaxPoolSize:    uint64(getEnvInt("MONGO_MAX_POOL_SIZE", 10)),
		DBRequired:          getEnvBool("DB_REQUIRED", false),

		// Both names have been used by deployments; the first non-empty wins.
		StripeSecretKey: firstNonEmpty(os.Getenv("STRIPE_SECRET_KEY"), os.Getenv("PAYMENT_GATEWAY_SK")),
		FallbackEnabled: getEnvBool("FALLBACK_ENABLED", false),

		RedisAddr: strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
	}
}

// MongoConnectionString returns the full URI if set, otherwise one built from
// DB_USER/DB_PASS and ClusterHost. It fails when neither form is configured.
func (c *Config) MongoConnectionString() (string, error) {
	if c.MongoURI != "" {
		return c.MongoURI, nil
	}
	if c.MongoUser == "" || c.MongoPass == "" {
		return "", fmt.Errorf("mongo connection not configured: set MONGODB_URI or DB_USER and DB_PASS")
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(c.MongoUser), url.QueryEscape(c.MongoPass), ClusterHost), nil
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

// HTTPAddress returns the address the HTTP server binds to.
func (c *Config) HTTPAddress() string {
	return ":" + c.ServerPort
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
