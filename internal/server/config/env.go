package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file
// in the working directory is loaded first if present; real environment
// variables win over it (godotenv does not override existing ones).
//
// Recognized variables:
//
//	ENDPOINT_ADDR     HTTP bind address
//	PUBLIC_BASE_URL   origin for download URLs
//	DATABASE_DSN      PostgreSQL DSN
//	S3_ROOT_USER      S3 credentials
//	S3_ROOT_PASSWORD
//	S3_BUCKET
//	S3_REGION
//	S3_BASE_ENDPOINT
//	RESEND_API_KEY    delivery channel API key
//	EMAIL_FROM        notification sender
//	EMAIL_RECIPIENTS  comma-separated recipient list
func parseEnv(config *Config) {
	// missing .env is fine
	_ = godotenv.Load()

	setIfPresent := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setIfPresent(&config.EndpointAddr, "ENDPOINT_ADDR")
	setIfPresent(&config.PublicBaseURL, "PUBLIC_BASE_URL")
	setIfPresent(&config.DatabaseDSN, "DATABASE_DSN")
	setIfPresent(&config.S3RootUser, "S3_ROOT_USER")
	setIfPresent(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	setIfPresent(&config.S3Bucket, "S3_BUCKET")
	setIfPresent(&config.S3Region, "S3_REGION")
	setIfPresent(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	setIfPresent(&config.ResendAPIKey, "RESEND_API_KEY")
	setIfPresent(&config.EmailFrom, "EMAIL_FROM")

	if v, ok := os.LookupEnv("EMAIL_RECIPIENTS"); ok {
		config.EmailRecipients = splitRecipients(v)
	}
}

// splitRecipients parses a comma-separated address list, trimming blanks.
func splitRecipients(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
