package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port                int    `envconfig:"PORT" default:"8080"`
	LogLevel            string `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL         string `envconfig:"DATABASE_URL" required:"true"`
	AuthSecret          string `envconfig:"AUTH_SECRET" required:"true"`
	GoogleOAuthClientID string `envconfig:"GOOGLE_OAUTH_CLIENT_ID" default:""`
	BcryptCost          int    `envconfig:"BCRYPT_COST" default:"12"`
	Version             string `envconfig:"VERSION" default:"dev"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GoogleAuthEnabled reports whether the Google sign-in flow is configured.
// An empty client ID disables the flow without failing startup.
func (c *Config) GoogleAuthEnabled() bool {
	return c.GoogleOAuthClientID != ""
}
