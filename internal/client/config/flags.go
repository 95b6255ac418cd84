package config

import (
	"flag"
	"os"

	"github.com/retronotes/retronotes/internal/flagx"
)

// parseFlags populates client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   server base URL (e.g., "http://localhost:5000")
//	-f string   session file path
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-f"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "e", config.ServerBaseURL, "server base URL")
	fs.StringVar(&config.SessionFile, "f", config.SessionFile, "session file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
