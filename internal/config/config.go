package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds environment-supplied defaults. Command-line flags override
// these; built-in defaults fill whatever the environment leaves unset.
type Config struct {
	Concurrency    int
	TimeoutSeconds int
	UserAgent      string
	SaveDir        string
	ProxyURL       string
	LogLevel       string
}

const envPrefix = "CYBERSHERLOCK_"

// Load reads defaults from the environment, honoring a local .env file when
// one exists.
func Load() Config {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	return Config{
		Concurrency:    getEnvInt(envPrefix+"CONCURRENCY", 40),
		TimeoutSeconds: getEnvInt(envPrefix+"TIMEOUT", 12),
		UserAgent:      os.Getenv(envPrefix + "USER_AGENT"),
		SaveDir:        getEnvString(envPrefix+"SAVE_DIR", "reports"),
		ProxyURL:       os.Getenv(envPrefix + "PROXY"),
		LogLevel:       getEnvString(envPrefix+"LOG_LEVEL", "info"),
	}
}

// ParseLogLevel maps the configured level onto logrus, defaulting to info.
func ParseLogLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": v}).
			Warn("ignoring non-integer environment value")
		return fallback
	}
	return n
}
