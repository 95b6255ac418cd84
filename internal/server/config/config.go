// Package config handles configuration for the server component:
// compiled defaults, then an optional .env/environment overlay, then
// command-line flags.
package config

import "time"

// Config holds runtime settings for the Retro Notes server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public REST endpoint.
//   - MetricsAddr: bind address for the Prometheus /metrics endpoint.
//   - MongoURI / MongoDatabase: document store connection settings.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use
//     the test default in prod.
//   - AccessTokenValidityDuration: session token lifetime.
//   - BcryptCost: bcrypt work factor for password hashing.
//   - AuthRateLimitRPS / AuthRateLimitBurst: per-IP limit on register/login.
type Config struct {
	EndpointAddrHTTP            string
	MetricsAddr                 string
	MongoURI                    string
	MongoDatabase               string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	BcryptCost                  int
	AuthRateLimitRPS            float64
	AuthRateLimitBurst          int
}

// LoadDefaults populates Config with development defaults.
// NOTE: these values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.MetricsAddr = ":9090"
	c.MongoURI = "mongodb://localhost:27017"
	c.MongoDatabase = "retronotes"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 24 * time.Hour
	c.BcryptCost = 10
	c.AuthRateLimitRPS = 5
	c.AuthRateLimitBurst = 10
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
