package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// RequestIDKey is the gin context key of the per-request id.
const RequestIDKey = "requestID"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

// EnvInt falls back to def when the variable is unset or not a positive integer.
func EnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("⚠️ %s=%q is not a positive integer, using %d", key, raw, def)
		return def
	}
	return n
}

// EnvDuration parses a Go duration such as "24h" or "90s".
func EnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("⚠️ %s=%q is not a valid duration, using %s", key, raw, def)
		return def
	}
	return d
}

func EnvBool(key string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return v
}
