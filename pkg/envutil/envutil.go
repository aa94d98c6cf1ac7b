package envutil

import (
	"log/slog"
	"os"
	"strconv"
)

func GetStr(key string, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func GetInt(key string, defaultValue int) int {
	strValue, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	value, err := strconv.Atoi(strValue)
	if err != nil {
		slog.Warn("invalid int in env, using default", "key", key, "default", defaultValue, "error", err)
		return defaultValue
	}
	return value
}

// GetBool accepts anything strconv.ParseBool does ("1", "true", "F", ...).
func GetBool(key string, defaultValue bool) bool {
	strValue, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	value, err := strconv.ParseBool(strValue)
	if err != nil {
		slog.Warn("invalid bool in env, using default", "key", key, "default", defaultValue, "error", err)
		return defaultValue
	}
	return value
}
