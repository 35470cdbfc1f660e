// internal/config/env.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Env holds settings read from the environment (and a .env file, which the
// binary autoloads with godotenv before FromEnv runs).
type Env struct {
	LogLevel      logrus.Level
	Scenario      string        // default scenario file; empty means the built-in scenario
	ChoiceTimeout time.Duration // 0 => no limit
	Seed          int64         // 0 => time based
}

// FromEnv reads:
//   - LOG_LEVEL (default "info")
//   - CARLOT_SCENARIO (default "")
//   - CARLOT_CHOICE_TIMEOUT seconds (default 0)
//   - CARLOT_SEED (default 0)
func FromEnv() Env {
	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	return Env{
		LogLevel:      level,
		Scenario:      getEnv("CARLOT_SCENARIO", ""),
		ChoiceTimeout: time.Duration(getEnvInt("CARLOT_CHOICE_TIMEOUT", 0)) * time.Second,
		Seed:          int64(getEnvInt("CARLOT_SEED", 0)),
	}
}

// NewLogger builds the process logger at the configured level.
func (e Env) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(e.LogLevel)
	return logger
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
