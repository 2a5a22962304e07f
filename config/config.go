package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs, built once at startup and passed
// into each component.
type Config struct {
	Port           string
	AllowedOrigins []string
	UploadDir      string
	JWTSecret      string
	OTPTTL         time.Duration
	Database       DatabaseConfig
	Classifier     ClassifierConfig
	Mailer         MailerConfig
}

// DatabaseConfig holds the PostgreSQL connection details.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// ClassifierConfig points at the external facial-emotion service.
type ClassifierConfig struct {
	URL     string
	Timeout time.Duration
}

// MailerConfig holds the SendGrid OTP delivery settings. An empty key means
// mail delivery is off and the server-side OTP log line is the only channel.
type MailerConfig struct {
	SendGridKey string
	FromName    string
	FromEmail   string
}

// Load reads the .env file (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	otpMinutes, err := strconv.Atoi(getEnv("OTP_TTL_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_TTL_MINUTES: %v", err)
	}

	classifierTimeout, err := strconv.Atoi(getEnv("CLASSIFIER_TIMEOUT_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLASSIFIER_TIMEOUT_SECONDS: %v", err)
	}

	return &Config{
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://127.0.0.1:5001,http://localhost:5001"), ","),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		OTPTTL:         time.Duration(otpMinutes) * time.Minute,
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "postgres"),
			Password: getEnv("DATABASE_PASSWORD", ""),
			Name:     getEnv("DATABASE_NAME", "anxisense"),
		},
		Classifier: ClassifierConfig{
			URL:     getEnv("CLASSIFIER_URL", "http://localhost:8500"),
			Timeout: time.Duration(classifierTimeout) * time.Second,
		},
		Mailer: MailerConfig{
			SendGridKey: getEnv("SENDGRID_API_KEY", ""),
			FromName:    getEnv("EMAIL_FROM_NAME", "AnxiSense"),
			FromEmail:   getEnv("EMAIL_FROM", "no-reply@anxisense.local"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
