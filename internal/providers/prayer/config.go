package prayer

import (
	"fmt"
	"time"
)

type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	Method  int           `mapstructure:"method"`
	School  int           `mapstructure:"school"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL: "https://api.aladhan.com/v1/timings",
		Method:  20,
		School:  1,
		Timeout: 5 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must be set")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
