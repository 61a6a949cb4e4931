// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Run modes.
const (
	ModeCLI  = "cli"
	ModeHTTP = "http"
)

// Config holds configuration knobs for the front ends and the inventory.
type Config struct {
	Mode              string
	HTTPAddr          string
	ShutdownTimeout   time.Duration
	LowStockThreshold int
	SeedProducts      bool
	LogLevel          string
	MetricsNamespace  string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from the environment with defaults. A .env
// file in the working directory, when present, seeds variables that are not
// already set.
func Load() Config {
	_ = godotenv.Load()
	mode := strings.ToLower(getenv("APP_MODE", ModeCLI))
	if mode != ModeHTTP {
		mode = ModeCLI
	}
	return Config{
		Mode:              mode,
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout:   durenvs("SHUTDOWN_TIMEOUT", 15),
		LowStockThreshold: atoienv("LOW_STOCK_THRESHOLD", 50),
		SeedProducts:      boolenv("SEED_PRODUCTS", true),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		MetricsNamespace:  getenv("METRICS_NAMESPACE", "inventory"),
	}
}
