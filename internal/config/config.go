package config

import (
	"os"
	"strconv"
	"time"
)

// Config collects runtime settings supplied through the environment.
type Config struct {
	MongoURI           string
	MongoDatabase      string
	RedisAddr          string
	HTTPPort           string
	CORSAllowedOrigins string

	AdminUsername string
	AdminPassword string
	JWTSecret     string

	ScoreCacheTTL time.Duration
}

// Load reads configuration from environment variables with local defaults.
func Load() *Config {
	return &Config{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DB", "istitlaa"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:           getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin"),
		JWTSecret:          getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		ScoreCacheTTL:      getEnvDuration("SCORE_CACHE_TTL_SECONDS", 5*time.Minute),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultVal
}
