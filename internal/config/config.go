package config

import "os"

type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Admin    AdminConfig
}

type DatabaseConfig struct {
	File string
}

type LogConfig struct {
	Dir string
}

// AdminConfig carries the single hardcoded administrator credential pair.
// It is checked before any account lookup and is never stored as an account.
type AdminConfig struct {
	Username string
	Password string
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			File: getEnv("RACETIX_DB_FILE", "racetix.db"),
		},
		Log: LogConfig{
			Dir: getEnv("RACETIX_LOG_DIR", "logs"),
		},
		Admin: AdminConfig{
			Username: getEnv("RACETIX_ADMIN_USER", "admin"),
			Password: getEnv("RACETIX_ADMIN_PASS", "admin"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
