// Package config handles configuration for the server component,
// including defaults, environment overlay, JSON overlay, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the case intake server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - PublicBaseURL: origin used in download URLs handed back to clients;
//     empty means the request's own host is used.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - ReadTimeout / WriteTimeout: HTTP server timeouts.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings. Empty
//     S3BaseEndpoint disables the S3 store.
//   - ResendAPIKey: API key for the Resend delivery channel.
//   - EmailFrom: sender identity for notifications.
//   - EmailRecipients: notification recipient list.
type Config struct {
	EndpointAddr    string
	PublicBaseURL   string
	DatabaseDSN     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	S3RootUser      string
	S3RootPassword  string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	ResendAPIKey    string
	EmailFrom       string
	EmailRecipients []string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.PublicBaseURL = ""
	c.DatabaseDSN = ""
	c.ReadTimeout = 30 * time.Second
	c.WriteTimeout = 30 * time.Second
	c.S3RootUser = ""
	c.S3RootPassword = ""
	c.S3Bucket = "caseintake"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.ResendAPIKey = ""
	c.EmailFrom = "Case Intake <onboarding@resend.dev>"
	c.EmailRecipients = []string{"intake@example.com"}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including an optional .env
// file) and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
