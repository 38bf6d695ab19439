package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AlertConfig struct {
	WebhookURL    string
	ServerLogsURL string
}

// IsConfigured returns true if error alerts can be delivered
func (c AlertConfig) IsConfigured() bool {
	return c.WebhookURL != ""
}

type AppConfig struct {
	DatabaseURL        string
	DatabaseSchema     string // Optional with default "public"
	JWTSecret          string
	Host               string // Optional with default "0.0.0.0"
	Port               string // Optional with default "5000"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	Location           *time.Location // Defines the calendar day used for sessions and analytics

	AlertConfig AlertConfig
}

// Addr returns the listen address of the HTTP server
func (c *AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	jwtSecret, err := getEnvRequired("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(getEnvWithDefault("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return &AppConfig{
		DatabaseURL:        databaseURL,
		DatabaseSchema:     getEnvWithDefault("DB_SCHEMA", "public"),
		JWTSecret:          jwtSecret,
		Host:               getEnvWithDefault("HOST", "0.0.0.0"),
		Port:               getEnvWithDefault("PORT", "5000"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		Location:           location,

		AlertConfig: AlertConfig{
			WebhookURL:    os.Getenv("ALERT_WEBHOOK_URL"),
			ServerLogsURL: os.Getenv("SERVER_LOGS_URL"),
		},
	}, nil
}

// LoadDatabaseConfig loads only what the command-line tools need to reach the database
func LoadDatabaseConfig() (databaseURL, schema string, err error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	databaseURL, err = getEnvRequired("DB_URL")
	if err != nil {
		return "", "", err
	}
	return databaseURL, getEnvWithDefault("DB_SCHEMA", "public"), nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
