package config

import (
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
	RetryWrites     bool
}

// LoadDatabaseConfig reads connection settings from the environment. Env
// parsing is local to this package; utils depends on config for the mongo
// client setup, so it cannot be the other way around.
func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             envString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     envUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     envUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(envInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:    envString("MONGO_DB", "studytrack"),
		RetryWrites:     envBool("MONGO_RETRY_WRITES", true),
	}
}

func envString(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultVal
}

func envUint64(key string, defaultVal uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.ParseUint(value, 10, 64); err == nil {
			return result
		}
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.ParseBool(value); err == nil {
			return result
		}
	}
	return defaultVal
}
