package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// getSecret retrieves the value of a secret from environment variables.
func getSecret(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("environment variable %q not set", key)
	}
	return value, nil
}

// getRequiredSecret is a helper func to get a required secret or fatal log on error.
func getRequiredSecret(key string) string {
	val, err := getSecret(key)
	if err != nil {
		log.Fatalf("FATAL: Cannot get required secret %q: %v", key, err)
	}
	if val == "" {
		log.Fatalf("FATAL: Required secret %q is empty", key)
	}
	return val
}

// getOptionalSecret is a helper func to get an optional secret with a default value.
func getOptionalSecret(key, defaultValue string) string {
	val, err := getSecret(key)
	if err != nil || val == "" {
		return defaultValue
	}
	return val
}

// parseIntWithDefault is a helper func to parse an optional integer secret.
func parseIntWithDefault(key string, defaultValue int) int {
	valStr, err := getSecret(key)
	if err != nil || valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Fatalf("FATAL: Invalid integer value for secret %q: %v", key, err)
	}
	return val
}

// parseList is a helper func to parse a comma-separated list secret.
func parseList(key string, defaultValue []string) []string {
	valStr, err := getSecret(key)
	if err != nil || valStr == "" {
		return defaultValue
	}

	parts := strings.Split(valStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
