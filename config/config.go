package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port          string
	JWTKey        string
	TokenTTLHours int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	GatewayApiURL    string // Payment gateway base URL
	GatewaySecretKey string // Payment gateway secret key

	EmailSender string
	Password    string // SMTP Password
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:          getEnv("PORT", "5000"),
		JWTKey:        getEnv("JWT_SECRET_KEY", "defaultSecret"),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 4),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "athletex"),
		DBPort:     getEnv("DB_PORT", "5432"),

		GatewayApiURL:    getEnv("GATEWAY_API_URL", "https://api.stripe.com/v1"),
		GatewaySecretKey: getEnv("GATEWAY_SECRET_KEY", ""),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("EMAIL_PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GatewaySecretKey == "" {
		log.Println("Warning: GATEWAY_SECRET_KEY is not set. Payment intents will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
