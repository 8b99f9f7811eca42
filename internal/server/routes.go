package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// API banner / health check
	s.echo.GET("/", s.handleHome)

	// Analysis endpoint (per-IP rate limited)
	s.echo.POST("/api/analyze", s.handleAnalyze,
		newRateLimiter(s.config.RateLimitPerSecond, s.config.RateLimitBurst))

	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)
}
