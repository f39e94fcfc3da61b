// Package config loads runtime settings from the environment (optionally
// seeded from a .env file) and opens the database and Redis handles.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver string // "sqlite" or "mysql"
	DBDSN    string // full DSN, overrides the DB_* parts below
	DBUser   string
	DBPass   string
	DBHost   string
	DBPort   string
	DBName   string

	LogLevel string
	LogFile  string

	CORSOrigin     string
	RateLimitRPS   float64
	RateLimitBurst int

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CatalogCacheTTL time.Duration

	AMQPURL     string
	OrderQueue  string
	CatalogSeed string
}

// Load reads .env when present and then the environment. Missing values
// fall back to development defaults.
func Load() (Config, bool) {
	loaded := godotenv.Load() == nil

	return Config{
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "debug"),

		DBDriver: getenv("DB_DRIVER", "sqlite"),
		DBDSN:    os.Getenv("DB_DSN"),
		DBUser:   getenv("DB_USER", "root"),
		DBPass:   os.Getenv("DB_PASS"),
		DBHost:   getenv("DB_HOST", "127.0.0.1"),
		DBPort:   getenv("DB_PORT", "3306"),
		DBName:   getenv("DB_NAME", "table_orders"),

		LogLevel: getenv("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),

		CORSOrigin:     getenv("CORS_ORIGIN", "*"),
		RateLimitRPS:   atof(getenv("RATE_LIMIT_RPS", "20"), 20),
		RateLimitBurst: atoi(getenv("RATE_LIMIT_BURST", "40"), 40),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         atoi(getenv("REDIS_DB", "0"), 0),
		CatalogCacheTTL: parseDur(getenv("CATALOG_CACHE_TTL", "5m"), 5*time.Minute),

		AMQPURL:     os.Getenv("AMQP_URL"),
		OrderQueue:  getenv("ORDER_EVENTS_QUEUE", "kitchen.orders"),
		CatalogSeed: os.Getenv("CATALOG_SEED"),
	}, loaded
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func atof(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func parseDur(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
