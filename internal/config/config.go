// Package config handles configuration loading for the refdata service.
package config

import (
	"log"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds all configuration for the refdata service.
type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	JWTExpiry     time.Duration
	Port          string
	Environment   string
	SwaggerHost   string
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DBHost:        GetEnvRequired("DB_HOST"),
		DBPort:        GetEnvRequired("DB_PORT"),
		DBUser:        GetEnvRequired("DB_USER"),
		DBPassword:    GetEnvRequired("DB_PASSWORD"),
		DBName:        GetEnvRequired("DB_NAME"),
		RedisHost:     GetEnv("REDIS_HOST", ""),
		RedisPort:     GetEnv("REDIS_PORT", "6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		JWTSecret:     GetEnvRequired("JWT_SECRET"),
		JWTIssuer:     GetEnv("JWT_ISSUER", "refdata-service"),
		JWTAudience:   GetEnv("JWT_AUDIENCE", "refdata-clients"),
		JWTExpiry:     parseDuration(GetEnv("JWT_EXPIRY", "1h"), time.Hour),
		Port:          GetEnv("PORT", "8080"),
		Environment:   GetEnv("ENVIRONMENT", "development"),
		SwaggerHost:   GetEnv("SWAGGER_HOST", ""),
		AdminUsername: GetEnv("ADMIN_USERNAME", ""),
		AdminPassword: GetEnv("ADMIN_PASSWORD", ""),
	}
}

// GetEnv returns the value of the named variable, or defaultValue when unset.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvRequired returns the value of the named variable and exits when unset.
func GetEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
