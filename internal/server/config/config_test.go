package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":5000", cfg.EndpointAddrHTTP)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "retronotes", cfg.MongoDatabase)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":6001")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("BCRYPT_COST", "4")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":6001", cfg.EndpointAddrHTTP)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestParseEnv_BadNumbersIgnored(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 24*time.Hour, cfg.AccessTokenValidityDuration)
}

func TestParseFlags_Overlay(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-a", ":7000", "-n", "notes_test", "-t", "5", "-unknown", "x"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, ":7000", cfg.EndpointAddrHTTP)
	require.Equal(t, "notes_test", cfg.MongoDatabase)
	require.Equal(t, 5*time.Minute, cfg.AccessTokenValidityDuration)
}
