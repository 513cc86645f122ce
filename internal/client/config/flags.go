package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/caseintake/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the intake server (default from Config)
//	-i int      online check interval in seconds (default from Config)
//	-m int      longest image side after compression, pixels
//	-q float    JPEG quality, 0..1
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-m", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the intake server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.IntVar(&cfg.MaxDimension, "m", cfg.MaxDimension, "longest image side after compression (pixels)")
	fs.Float64Var(&cfg.Quality, "q", cfg.Quality, "JPEG quality, 0..1")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
