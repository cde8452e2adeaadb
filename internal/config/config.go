package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL            string
	Port                   string
	Version                string  // Version string served on /user/version
	DefaultCity            string  // City whose temperature is fixed instead of randomized
	DefaultCityTemp        string  // Temperature returned verbatim for the default city
	LowNumber              int     // Inclusive lower bound of the random temperature range
	HighNumber             int     // Exclusive upper bound of the random temperature range
	RateLimitRPS           float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst         int     // Burst size for rate limiting
	RateLimitRegisterRPS   float64 // Rate limit for user registration (stricter)
	RateLimitRegisterBurst int     // Burst size for registration
}

// Load reads the configuration from the environment once at startup. The
// temperature range is parsed and validated here so a bad LOW_NUMBER or
// HIGH_NUMBER fails the process instead of individual weather requests.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	low, err := getEnvIntStrict("LOW_NUMBER", 0)
	if err != nil {
		return nil, err
	}
	high, err := getEnvIntStrict("HIGH_NUMBER", 50)
	if err != nil {
		return nil, err
	}
	if high <= low {
		return nil, fmt.Errorf("HIGH_NUMBER (%d) must be greater than LOW_NUMBER (%d)", high, low)
	}

	return &Config{
		DatabaseURL:            databaseURL(),
		Port:                   getEnv("PORT", "8080"),
		Version:                getEnv("VERSION", "1.0.0"),
		DefaultCity:            getEnv("DEFAULT_CITY", ""),
		DefaultCityTemp:        getEnv("DEFAULT_CITY_TEMP", ""),
		LowNumber:              low,
		HighNumber:             high,
		RateLimitRPS:           getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:         getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitRegisterRPS:   getEnvFloat("RATE_LIMIT_REGISTER_RPS", 5),
		RateLimitRegisterBurst: getEnvInt("RATE_LIMIT_REGISTER_BURST", 10),
	}, nil
}

// databaseURL builds a lib/pq connection string from the RDS_* environment
// variables the service has always been deployed with.
func databaseURL() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("RDS_HOSTNAME", "localhost"),
		getEnv("RDS_PORT", "5432"),
		getEnv("RDS_USERNAME", "postgres"),
		getEnv("RDS_PASSWORD", ""),
		getEnv("RDS_DB_NAME", "weatheruserdatabase"),
		getEnv("RDS_SSL_MODE", "disable"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvIntStrict is like getEnvInt but reports unparseable values instead of
// silently falling back, so misconfiguration is caught at startup.
func getEnvIntStrict(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, value, err)
	}
	return intValue, nil
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
