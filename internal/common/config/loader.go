// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like APIS_OPENWEATHER_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored when absent
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvSecrets(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from multiple possible locations so the loader
// works when invoked from package test directories too.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up directories looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// applyEnvSecrets maps the deployment's flat env var names onto the
// config. These are the variable names the frontend deployment already
// provisions, so they win over file values when set.
func applyEnvSecrets(cfg *Config) {
	if v := os.Getenv("OPENWEATHER_KEY"); v != "" {
		cfg.APIs.OpenWeather.APIKey = v
	}
	if v := os.Getenv("AQI_TOKEN"); v != "" {
		cfg.APIs.WAQI.Token = v
	}
	if v := os.Getenv("FOURSQUARE_KEY"); v != "" {
		cfg.APIs.Foursquare.APIKey = v
	}
	if v := os.Getenv("RAJAONGKIR_SHIPPING_KEY"); v != "" {
		cfg.APIs.RajaOngkir.APIKey = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.Server.AllowedOrigin = v
	}
	if v := os.Getenv("PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "siska-gateway"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.AllowedOrigin == "" {
		cfg.Server.AllowedOrigin = "*"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Cities.RedisKey == "" {
		cfg.Cities.RedisKey = "siska:cities"
	}

	if cfg.APIs.Aladhan.BaseURL == "" {
		cfg.APIs.Aladhan.BaseURL = "https://api.aladhan.com/v1/timings"
	}
	if cfg.APIs.Aladhan.Method == 0 {
		cfg.APIs.Aladhan.Method = 20
	}
	if cfg.APIs.Aladhan.School == 0 {
		cfg.APIs.Aladhan.School = 1
	}
	if cfg.APIs.OpenWeather.BaseURL == "" {
		cfg.APIs.OpenWeather.BaseURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	if cfg.APIs.WAQI.BaseURL == "" {
		cfg.APIs.WAQI.BaseURL = "https://api.waqi.info"
	}
	if cfg.APIs.Foursquare.BaseURL == "" {
		cfg.APIs.Foursquare.BaseURL = "https://api.foursquare.com/v3/places/search"
	}
	if cfg.APIs.Foursquare.Limit == 0 {
		cfg.APIs.Foursquare.Limit = 5
	}
	if cfg.APIs.RajaOngkir.BaseURL == "" {
		cfg.APIs.RajaOngkir.BaseURL = "https://api.rajaongkir.com/starter/cost"
	}
	if cfg.APIs.RajaOngkir.Couriers == "" {
		cfg.APIs.RajaOngkir.Couriers = "jne:tiki:sicepat"
	}

	for _, timeout := range []*int{
		&cfg.APIs.Aladhan.Timeout,
		&cfg.APIs.OpenWeather.Timeout,
		&cfg.APIs.WAQI.Timeout,
		&cfg.APIs.Foursquare.Timeout,
		&cfg.APIs.RajaOngkir.Timeout,
	} {
		if *timeout == 0 {
			*timeout = 5000
		}
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	if cfg.Redis.Enabled && cfg.Redis.Address == "" {
		return fmt.Errorf("redis.address required when redis.enabled")
	}
	return nil
}
