// Package config handles configuration for the client component:
// compiled defaults, then an optional .env/environment overlay, then
// command-line flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the Retro Notes terminal client.
//
// Fields:
//   - ServerBaseURL: base URL of the Retro Notes API server.
//   - SessionFile: path of the durable session file holding the current
//     identity and token.
type Config struct {
	ServerBaseURL string
	SessionFile   string
}

// LoadDefaults populates Config with development defaults. The session file
// defaults to ~/.retronotes/session.json, falling back to the working
// directory when the home directory cannot be determined.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000"

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.SessionFile = filepath.Join(home, ".retronotes", "session.json")
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (optionally a .env file) and finally from
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("RETRONOTES_SERVER"); ok {
		config.ServerBaseURL = v
	}
	if v, ok := os.LookupEnv("RETRONOTES_SESSION_FILE"); ok {
		config.SessionFile = v
	}
}
