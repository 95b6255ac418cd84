package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", cfg.ServerBaseURL)
	assert.Contains(t, cfg.SessionFile, "session.json")
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("RETRONOTES_SERVER", "http://api.test:9999")
	t.Setenv("RETRONOTES_SESSION_FILE", "/tmp/sess.json")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://api.test:9999", cfg.ServerBaseURL)
	assert.Equal(t, "/tmp/sess.json", cfg.SessionFile)
}

func TestParseFlags_Overlay(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-e", "http://flag.test", "-unrelated", "x"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://flag.test", cfg.ServerBaseURL)
}
