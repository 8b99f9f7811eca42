package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/singhprateek87/bhavna/internal/config"
	"github.com/singhprateek87/bhavna/internal/emotion"
	apperrors "github.com/singhprateek87/bhavna/internal/errors"
	"github.com/singhprateek87/bhavna/internal/platform/correlation"
)

// analyzer is the subset of the emotion pipeline the server needs.
type analyzer interface {
	Analyze(ctx context.Context, text string) (emotion.Result, error)
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	analyzer  analyzer
	clock     clockwork.Clock
	startTime time.Time
}

func NewServer(cfg *config.Config, a analyzer, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(correlationMiddleware())
	e.Use(requestLoggerMiddleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		analyzer:  a,
		clock:     clock,
		startTime: clock.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// requestLoggerMiddleware emits one access-log line per request through the
// structured logger, so records carry the correlation ID like every other
// log line.
func requestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.InfoContext(c.Request().Context(), "Request handled",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			)
			return nil
		},
	})
}

// correlationMiddleware assigns every request a correlation ID, exposes it in
// the response header, and threads it through the request context so log
// records pick it up.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := correlation.NewID()
			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Correlation-ID", id)
			return next(c)
		}
	}
}
