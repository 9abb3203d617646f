package shipping

import (
	"fmt"
	"time"
)

type Config struct {
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	Couriers string        `mapstructure:"couriers"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:  "https://api.rajaongkir.com/starter/cost",
		Couriers: "jne:tiki:sicepat",
		Timeout:  5 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must be set")
	}
	if c.Couriers == "" {
		return fmt.Errorf("couriers must be set")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
