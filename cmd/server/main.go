package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siska-gateway/internal/api"
	"siska-gateway/internal/assistant"
	"siska-gateway/internal/cities"
	"siska-gateway/internal/common/config"
	"siska-gateway/internal/common/database"
	"siska-gateway/internal/common/logger"
	"siska-gateway/internal/common/observability"
	"siska-gateway/internal/providers/airquality"
	"siska-gateway/internal/providers/places"
	"siska-gateway/internal/providers/prayer"
	"siska-gateway/internal/providers/shipping"
	"siska-gateway/internal/providers/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	appLogger.Info("starting siska gateway", map[string]interface{}{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	logCredentialPresence(appLogger, cfg)

	resolver := cities.NewResolver()
	if cfg.Redis.Enabled {
		rdb, err := database.NewRedis(cfg.Redis)
		if err != nil {
			appLogger.WithError(err).Warn("redis unavailable, using builtin city table only", nil)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := rdb.Ping(ctx); err != nil {
				appLogger.WithError(err).Warn("redis unreachable, using builtin city table only", nil)
			} else if err := resolver.Hydrate(ctx, rdb, cfg.Cities.RedisKey, appLogger); err != nil {
				appLogger.WithError(err).Warn("city table hydration failed", nil)
			}
			cancel()
			rdb.Close()
		}
	}

	prayerCfg := &prayer.Config{
		BaseURL: cfg.APIs.Aladhan.BaseURL,
		Method:  cfg.APIs.Aladhan.Method,
		School:  cfg.APIs.Aladhan.School,
		Timeout: time.Duration(cfg.APIs.Aladhan.Timeout) * time.Millisecond,
	}
	weatherCfg := &weather.Config{
		BaseURL: cfg.APIs.OpenWeather.BaseURL,
		APIKey:  cfg.APIs.OpenWeather.APIKey,
		Timeout: time.Duration(cfg.APIs.OpenWeather.Timeout) * time.Millisecond,
	}
	aqiCfg := &airquality.Config{
		BaseURL: cfg.APIs.WAQI.BaseURL,
		Token:   cfg.APIs.WAQI.Token,
		Timeout: time.Duration(cfg.APIs.WAQI.Timeout) * time.Millisecond,
	}
	placesCfg := &places.Config{
		BaseURL: cfg.APIs.Foursquare.BaseURL,
		APIKey:  cfg.APIs.Foursquare.APIKey,
		Limit:   cfg.APIs.Foursquare.Limit,
		Timeout: time.Duration(cfg.APIs.Foursquare.Timeout) * time.Millisecond,
	}
	shippingCfg := &shipping.Config{
		BaseURL:  cfg.APIs.RajaOngkir.BaseURL,
		APIKey:   cfg.APIs.RajaOngkir.APIKey,
		Couriers: cfg.APIs.RajaOngkir.Couriers,
		Timeout:  time.Duration(cfg.APIs.RajaOngkir.Timeout) * time.Millisecond,
	}

	for provider, providerCfg := range map[string]interface{ Validate() error }{
		"aladhan":     prayerCfg,
		"openweather": weatherCfg,
		"waqi":        aqiCfg,
		"foursquare":  placesCfg,
		"rajaongkir":  shippingCfg,
	} {
		if err := providerCfg.Validate(); err != nil {
			appLogger.WithError(err).Error("invalid provider configuration", map[string]interface{}{
				"provider": provider,
			})
			os.Exit(1)
		}
	}

	dispatcher := assistant.NewDispatcher(assistant.Dependencies{
		Prayer:   prayer.NewClient(prayerCfg, appLogger),
		Weather:  weather.NewClient(weatherCfg, appLogger),
		AQI:      airquality.NewClient(aqiCfg, appLogger),
		Places:   places.NewClient(placesCfg, appLogger),
		Shipping: shipping.NewClient(shippingCfg, appLogger),
		Cities:   resolver,
		Logger:   appLogger,
	})

	handler := api.NewHandler(dispatcher, obs, appLogger)
	server := api.NewServer(cfg.Server, handler, appLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.WithError(err).Error("http server failed", nil)
			os.Exit(1)
		}
	case sig := <-stop:
		appLogger.Info("shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			appLogger.WithError(err).Error("graceful shutdown failed", nil)
		}
	}

	appLogger.Info("siska gateway stopped", nil)
}

// logCredentialPresence reports which provider credentials are loaded
// without ever logging the values.
func logCredentialPresence(log logger.Logger, cfg *config.Config) {
	log.Info("provider credential status", map[string]interface{}{
		"openweather": cfg.APIs.OpenWeather.APIKey != "",
		"waqi":        cfg.APIs.WAQI.Token != "",
		"foursquare":  cfg.APIs.Foursquare.APIKey != "",
		"rajaongkir":  cfg.APIs.RajaOngkir.APIKey != "",
		"cors":        cfg.Server.AllowedOrigin,
	})
}
