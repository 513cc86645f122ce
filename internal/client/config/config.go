package config

import (
	"time"

	"github.com/dmitrijs2005/caseintake/internal/imagex"
)

// Config holds runtime settings for the case intake CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the intake HTTP API.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - MaxDimension: longest image side after client-side compression, pixels.
//   - Quality: JPEG quality in the 0..1 range.
type Config struct {
	ServerBaseURL       string
	OnlineCheckInterval time.Duration
	MaxDimension        int
	Quality             float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.OnlineCheckInterval = 3 * time.Second
	c.MaxDimension = imagex.DefaultMaxDimension
	c.Quality = imagex.DefaultQuality
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
