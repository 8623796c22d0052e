package configs

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	Port      string
	APIPrefix string

	JWTSecret        string
	JWTExpiresIn     time.Duration
	BcryptCost       int
	AuthHashEndpoint bool

	ClubTimezone    string
	SeasonLockEnded bool
	CorsOrigins     string

	RunSeeds      bool
	AdminUsername string
	AdminPassword string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" && os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			slog.Info("no .env file found, using system environment")
		} else {
			slog.Info(".env file loaded")
		}
	} else {
		slog.Info("running in managed environment, using system environment")
	}

	Port = GetEnv("PORT", "3000")
	APIPrefix = GetEnv("API_PREFIX", "/api")

	JWTSecret = GetEnv("JWT_SECRET")
	JWTExpiresIn = GetEnvDuration("JWT_EXPIRES_IN", 8*time.Hour)
	BcryptCost = GetEnvInt("BCRYPT_COST", 10)
	AuthHashEndpoint = GetEnvBool("AUTH_HASH_ENDPOINT", true)

	ClubTimezone = GetEnv("CLUB_TIMEZONE", "America/Argentina/Buenos_Aires")
	SeasonLockEnded = GetEnvBool("SEASON_LOCK_ENDED", false)
	CorsOrigins = GetEnv("CORS_ORIGINS", "http://localhost:3001,http://localhost:5173")

	RunSeeds = GetEnvBool("RUN_SEEDS", false)
	AdminUsername = GetEnv("ADMIN_USERNAME")
	AdminPassword = GetEnv("ADMIN_PASSWORD")

	if JWTSecret == "" {
		slog.Error("JWT_SECRET is not set")
	} else {
		slog.Info("JWT_SECRET loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}
