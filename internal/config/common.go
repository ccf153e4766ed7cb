package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultEnvFile = "dev.env"

type CommonConfig struct {
	DbDriver          string
	DbQueryTimeoutSec time.Duration
	BrokerTimeoutSec  time.Duration
}

func NewCommonConfig() CommonConfig {
	return CommonConfig{
		DbDriver:          getEnv("DB_DRIVER", "sqlite"),
		DbQueryTimeoutSec: getEnvAsDuration("DB_QUERY_TIMEOUT_SEC", 5*time.Second),
		BrokerTimeoutSec:  getEnvAsDuration("BROKER_TIMEOUT_SEC", 5*time.Second),
	}
}

// LoadEnvFile populates the process environment from a dotenv file.
// A missing file is not an error: the environment may already be set
// by the container runtime.
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed) * time.Second
		}
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFromFile(key string, defaultValue string) string {
	path, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return defaultValue
	}
	return strings.TrimSpace(string(content))
}
