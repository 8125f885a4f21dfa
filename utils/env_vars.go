package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type envTypes interface {
	~string | ~int | ~bool
}

func parseEnv[T envTypes](name string, raw string) T {
	var out T
	switch any(out).(type) {
	case string:
		out = any(raw).(T)
	case int:
		intValue, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("environment variable %s is not valid: '%s' is not an integer", name, raw)
		}
		out = any(intValue).(T)
	case bool:
		boolValue, err := strconv.ParseBool(raw)
		if err != nil {
			log.Fatalf("environment variable %s is not valid: '%s' is not a boolean", name, raw)
		}
		out = any(boolValue).(T)
	default:
		panic(fmt.Sprintf("unsupported type for environment variable %s", name))
	}
	return out
}

func GetEnv[T envTypes](name string, defaultValue T) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return defaultValue
	}
	return parseEnv[T](name, raw)
}

func GetRequiredEnv[T envTypes](name string) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	return parseEnv[T](name, raw)
}
