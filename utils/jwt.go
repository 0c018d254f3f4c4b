package utils

import (
	"log"
	"os"
	"strconv"
)

var (
	JWTSecretKey               string
	JWTExpirationTime          int64
	RefreshTokenExpirationTime int64
)

// InitJWT loads the signing key and token lifetimes (seconds). Outside of
// tests every value must be present; under GO_ENV=test missing values fall
// back to fixed defaults so handlers can run without a .env file.
func InitJWT() {
	if os.Getenv("GO_ENV") == "test" {
		defaultEnv("JWT_SECRET_KEY", "test_secret_key")
		defaultEnv("JWT_EXPIRATION_TIME", "3600")
		defaultEnv("REFRESH_TOKEN_EXPIRATION_TIME", "604800")
	}

	JWTSecretKey = mustEnv("JWT_SECRET_KEY")
	JWTExpirationTime = mustEnvSeconds("JWT_EXPIRATION_TIME")
	RefreshTokenExpirationTime = mustEnvSeconds("REFRESH_TOKEN_EXPIRATION_TIME")
}

func defaultEnv(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s is not set", key)
	}
	return value
}

func mustEnvSeconds(key string) int64 {
	seconds, err := strconv.ParseInt(mustEnv(key), 10, 64)
	if err != nil {
		log.Fatalf("%s must be an integer number of seconds: %v", key, err)
	}
	return seconds
}
