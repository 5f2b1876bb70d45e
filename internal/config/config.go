// Package config loads service configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"cube-scan/pkg/logger"
)

// Config holds all runtime settings for the service.
type Config struct {
	ServiceType string // "ollama" or "cloudrun"
	Port        string
	Debug       bool
	CORSOrigins string

	// Vision fallback service.
	CubeInferenceURL string
	CubeModel        string

	// Text generation service for taunts.
	TextInferenceURL string
	TextModel        string

	// ConfidenceThreshold below which the CV result defers to the
	// fallback.
	ConfidenceThreshold float64

	Log logger.Config
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() Config {
	_ = godotenv.Load()

	logCfg := logger.DefaultConfig()
	logCfg.Level = getEnv("LOG_LEVEL", logCfg.Level)
	logCfg.Format = getEnv("LOG_FORMAT", logCfg.Format)
	logCfg.Output = getEnv("LOG_OUTPUT", logCfg.Output)
	logCfg.FilePath = getEnv("LOG_FILE", logCfg.FilePath)
	logCfg.MaxSize = getEnvInt("LOG_MAX_SIZE", logCfg.MaxSize)
	logCfg.MaxBackups = getEnvInt("LOG_MAX_BACKUPS", logCfg.MaxBackups)
	logCfg.MaxAge = getEnvInt("LOG_MAX_AGE", logCfg.MaxAge)

	cfg := Config{
		ServiceType:         getEnv("SERVICE_TYPE", "ollama"),
		Port:                getEnv("PORT", "5000"),
		Debug:               getEnvBool("DEBUG", false),
		CORSOrigins:         getEnv("CORS_ORIGINS", "*"),
		CubeInferenceURL:    getEnv("CUBE_ANALYSIS_INFERENCE_SERVICE_URL", "http://localhost:11434"),
		CubeModel:           getEnv("CUBE_ANALYSIS_MODEL", "gemma3:12b"),
		TextInferenceURL:    getEnv("WITTY_TEXT_INFERENCE_SERVICE_URL", "http://localhost:11434"),
		TextModel:           getEnv("WITTY_TEXT_MODEL", "gemma3:1b"),
		ConfidenceThreshold: getEnvFloat("CONFIDENCE_THRESHOLD", 0.7),
		Log:                 logCfg,
	}

	if cfg.Debug {
		cfg.Log.Level = "debug"
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
