package places

import (
	"fmt"
	"time"
)

type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Limit   int           `mapstructure:"limit"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL: "https://api.foursquare.com/v3/places/search",
		Limit:   5,
		Timeout: 5 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must be set")
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
