package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"siska-gateway/internal/common/config"
	"siska-gateway/internal/common/logger"
)

// Server is the HTTP boundary: the message endpoint plus health and
// metrics, behind the configured CORS policy.
type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

func NewServer(cfg config.ServerConfig, handler *Handler, log logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.AllowedOrigin))

	router.POST("/api/message", handler.HandleMessage)
	router.GET("/healthz", handler.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.Addr(),
			Handler: router,
		},
		logger: log,
	}
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if allowedOrigin == "" || allowedOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{allowedOrigin}
	}
	return cors.New(corsConfig)
}

// Start blocks serving until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
