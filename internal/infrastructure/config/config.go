package config

import "os"

// Config holds all session configuration loaded from environment variables.
type Config struct {
	BankName  string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		BankName:  getEnv("BANK_NAME", "AwesomeGIC Bank"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
