package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over it.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.EndpointAddrHTTP = getEnv("HTTP_ADDR", config.EndpointAddrHTTP)
	config.MetricsAddr = getEnv("METRICS_ADDR", config.MetricsAddr)
	config.MongoURI = getEnv("MONGO_URI", config.MongoURI)
	config.MongoDatabase = getEnv("MONGO_DB", config.MongoDatabase)
	config.SecretKey = getEnv("SECRET_KEY", config.SecretKey)

	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if cost, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = cost
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
