package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	FirebaseProjectID   string
	FirebaseCredentials string

	// Email delivery (Resend). If either the API key or the sender address is
	// missing, reminder dispatch is disabled for the run.
	ResendAPIKey  string
	SenderAddress string
	SenderName    string

	// Reminder job tuning.
	ReminderWindow time.Duration
	ScanInterval   time.Duration
	TimeZone       string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		FirebaseProjectID:   getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		ResendAPIKey:        getEnv("RESEND_API_KEY", ""),
		SenderAddress:       getEnv("REMINDER_SENDER_ADDRESS", ""),
		SenderName:          getEnv("REMINDER_SENDER_NAME", "MyTask Reminders"),
		ReminderWindow:      getDuration("REMINDER_WINDOW", 60*time.Minute),
		ScanInterval:        getDuration("REMINDER_SCAN_INTERVAL", 10*time.Minute),
		TimeZone:            getEnv("REMINDER_TIMEZONE", "Asia/Manila"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
