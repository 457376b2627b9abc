package app

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port                int           // HTTP server port (default: 3000)
	DatabaseFile        string        // Path to the backing db file (default: ./db.json)
	StoreDriver         string        // Store driver: flatfile or bolt (default: flatfile)
	StaticDir           string        // Directory holding styles.css (default: ./static)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// fileConfig is the optional YAML configuration file named by
// BIOSITE_CONFIG. Environment variables override anything set here.
type fileConfig struct {
	Port     int `yaml:"port"`
	Database struct {
		File   string `yaml:"file"`
		Driver string `yaml:"driver"`
	} `yaml:"database"`
	StaticDir string `yaml:"static_dir"`
	Env       string `yaml:"env"`
	Log       struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	ShutdownGracePeriod string `yaml:"shutdown_grace_period"`
}

func LoadConfig() Config {
	cfg := Config{
		Port:                3000,
		DatabaseFile:        "db.json",
		StoreDriver:         "flatfile",
		StaticDir:           "static",
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		ShutdownGracePeriod: 10 * time.Second,
	}

	if path := os.Getenv("BIOSITE_CONFIG"); path != "" {
		applyFile(&cfg, path)
	}

	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.DatabaseFile = getEnvOrDefault("BIOSITE_DB_FILE", cfg.DatabaseFile)
	cfg.StoreDriver = getEnvOrDefault("BIOSITE_STORE_DRIVER", cfg.StoreDriver)
	cfg.StaticDir = getEnvOrDefault("BIOSITE_STATIC_DIR", cfg.StaticDir)
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)

	return cfg
}

func applyFile(cfg *Config, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config file %s unreadable, using defaults: %v", path, err)
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		log.Printf("config file %s malformed, using defaults: %v", path, err)
		return
	}

	if fc.Port != 0 {
		cfg.Port = fc.Port
	}
	if fc.Database.File != "" {
		cfg.DatabaseFile = fc.Database.File
	}
	if fc.Database.Driver != "" {
		cfg.StoreDriver = fc.Database.Driver
	}
	if fc.StaticDir != "" {
		cfg.StaticDir = fc.StaticDir
	}
	if fc.Env != "" {
		cfg.Env = fc.Env
	}
	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	if fc.Log.Format != "" {
		cfg.LogFormat = fc.Log.Format
	}
	if fc.ShutdownGracePeriod != "" {
		if d, err := time.ParseDuration(fc.ShutdownGracePeriod); err == nil {
			cfg.ShutdownGracePeriod = d
		}
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
