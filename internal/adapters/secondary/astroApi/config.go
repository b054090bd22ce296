package astroApi

import "time"

type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.vedastro.org/api"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
	SkipSSL string        `envconfig:"SKIP_SSL"` // Railway passes strings, not bools
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}
