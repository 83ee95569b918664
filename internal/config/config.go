package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort      string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	GinMode         string
	JWTSecret       string
	AccessTTLMin    int
	RefreshTTLHours int
	LogFile         string
}

func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "trackeruser"),
		DBPassword:      getEnv("DB_PASSWORD", "trackerpassword"),
		DBName:          getEnv("DB_NAME", "project_tracking"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		JWTSecret:       getEnv("JWT_SECRET", "default-secret-key-change-me"),
		AccessTTLMin:    getEnvInt("JWT_ACCESS_TTL_MINUTES", 15),
		RefreshTTLHours: getEnvInt("JWT_REFRESH_TTL_HOURS", 168),
		LogFile:         getEnv("LOG_FILE", "logs/server.log"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
