// Package config loads runtime settings for the Thesis Ledger CLI.
//
// Sources are layered: struct defaults, then a .env file / environment
// variables, then command-line flags. Later sources win.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime settings for the CLI.
type Config struct {
	// APIBaseURL is the backend address, scheme included.
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8090"`

	// DataDir is where the local session database lives. Empty means the
	// user's default config directory.
	DataDir string `envconfig:"DATA_DIR"`

	// RequestTimeout bounds every API call.
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`

	// PageSize is the page size requested from paginated endpoints.
	PageSize int `envconfig:"PAGE_SIZE" default:"10"`

	// MaxUploadSize is the ceiling for verification uploads, in bytes.
	MaxUploadSize int64 `envconfig:"MAX_UPLOAD_SIZE" default:"10485760"`

	// Verbose enables debug logging.
	Verbose bool `envconfig:"VERBOSE" default:"false"`
}

// Load constructs a Config from defaults, environment, and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("THESISLEDGER", cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
