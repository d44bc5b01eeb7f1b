package staticroute

import (
	"github.com/dmitrymomot/staticroute/core/config"
)

// Config provides environment-based configuration for the codec.
type Config struct {
	Secret string `env:"STATIC_ROUTE_SECRET" envDefault:""`
}

// NewFromConfig creates a Codec from configuration.
func NewFromConfig(cfg Config) (*Codec, error) {
	return New(cfg.Secret)
}

// NewFromEnv creates a Codec with the secret read from the process
// environment (STATIC_ROUTE_SECRET). This is the outermost-boundary adapter:
// the ambient lookup happens here once, and the codec carries the secret
// explicitly from then on.
func NewFromEnv() (*Codec, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg)
}
