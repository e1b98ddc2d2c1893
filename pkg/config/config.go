package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Session    SessionConfig
	Cloudflare CloudflareConfig
	Objects    ObjectStorageConfig
	Email      EmailConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	// Empty URL selects the in-memory store.
	URL string
}

type SessionConfig struct {
	Secret string
}

type CloudflareConfig struct {
	AccountID string
	APIToken  string
}

type ObjectStorageConfig struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

type EmailConfig struct {
	ResendAPIKey string
	InquiryInbox string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "primegate-dev-secret"),
		},
		Cloudflare: CloudflareConfig{
			AccountID: getEnv("CF_ACCOUNT_ID", ""),
			APIToken:  getEnv("CF_IMAGES_TOKEN", ""),
		},
		Objects: ObjectStorageConfig{
			AccountID: getEnv("R2_ACCOUNT_ID", ""),
			AccessKey: getEnv("R2_ACCESS_KEY", ""),
			SecretKey: getEnv("R2_SECRET_KEY", ""),
			Bucket:    getEnv("R2_BUCKET_NAME", "primegate-uploads"),
			PublicURL: getEnv("R2_PUBLIC_URL", "https://cdn.primegateproperties.com"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			InquiryInbox: getEnv("INQUIRY_INBOX", "info@primegateproperties.com"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
