// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct. It is constructed
// once at process start and never mutated afterwards.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Cities  CitiesConfig  `mapstructure:"cities"`
	APIs    APIsConfig    `mapstructure:"apis"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the HTTP listener settings. AllowedOrigin is the
// cross-origin policy value handed to the CORS middleware ("*" by default).
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	AllowedOrigin   string `mapstructure:"allowed_origin"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CitiesConfig controls optional startup hydration of the city alias
// table from Redis. The table is read-only once the process is up.
type CitiesConfig struct {
	RedisKey string `mapstructure:"redis_key"`
}

// APIsConfig holds settings for the external data providers.
type APIsConfig struct {
	Aladhan struct {
		BaseURL string `mapstructure:"base_url"`
		Method  int    `mapstructure:"method"`
		School  int    `mapstructure:"school"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"aladhan"`

	OpenWeather struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"openweather"`

	WAQI struct {
		BaseURL string `mapstructure:"base_url"`
		Token   string `mapstructure:"token"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"waqi"`

	Foursquare struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
		Limit   int    `mapstructure:"limit"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"foursquare"`

	RajaOngkir struct {
		BaseURL  string `mapstructure:"base_url"`
		APIKey   string `mapstructure:"api_key"`
		Couriers string `mapstructure:"couriers"`
		Timeout  int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"rajaongkir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
