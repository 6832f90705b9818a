package database

import (
	"os"
	"strconv"
	"time"
)

// LoadConfigFromEnv loads database configuration from environment variables.
// DATABASE_URL wins when set; otherwise the DSN is composed from DB_* parts.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		port = 5432
	}

	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "5"))

	return Config{
		URL:              os.Getenv("DATABASE_URL"),
		Host:             getEnvOrDefault("DB_HOST", "localhost"),
		Port:             port,
		User:             getEnvOrDefault("DB_USER", "incidentfox"),
		Password:         os.Getenv("DB_PASSWORD"),
		Database:         getEnvOrDefault("DB_NAME", "incidentfox"),
		SSLMode:          getEnvOrDefault("DB_SSLMODE", "disable"),
		MaxOpenConns:     maxOpen,
		MaxIdleConns:     maxIdle,
		ConnMaxLifetime:  30 * time.Minute,
		ConnMaxIdleTime:  5 * time.Minute,
		AutoCreateTables: getEnvOrDefault("ORCHESTRATOR_AUTO_CREATE_TABLES", "true") == "true",
	}, err
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
