package postgrest

import (
	"fmt"
	"time"
)

type Config struct {
	URL     string        `envconfig:"URL"` // https://<project>.supabase.co
	Key     string        `envconfig:"KEY"`
	Schema  string        `envconfig:"SCHEMA" default:"public"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Validate fails when store credentials are missing; the service cannot start without them
func (c *Config) Validate() error {
	if c.URL == "" || c.Key == "" {
		return fmt.Errorf("missing record store URL or key")
	}
	return nil
}
