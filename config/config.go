package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

// Config holds client settings, read from the environment.
type Config struct {
	// ServerURL is the base URL of the AstroAI backend.
	ServerURL string `env:"ASTROAI_SERVER, default=http://localhost:8000"`
	// DataDir holds the session keystore. Defaults to the user config dir.
	DataDir  string `env:"ASTROAI_DATA_DIR"`
	LogLevel string `env:"ASTROAI_LOG_LEVEL, default=info"`
	// LogFile receives structured logs. Empty disables logging entirely,
	// since the terminal itself is taken by the UI.
	LogFile string `env:"ASTROAI_LOG_FILE"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		cfg.DataDir = filepath.Join(base, "astroai")
	}

	return &cfg, nil
}

// KeystorePath returns the location of the durable session keystore.
func (c *Config) KeystorePath() string {
	return filepath.Join(c.DataDir, "session.db")
}
