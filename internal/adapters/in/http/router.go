package http

import (
	"context"
	"fmt"
	"log/slog"

	"delivery-order/api"
	"delivery-order/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance with logging, metrics, OpenAPI request
// validation and every API route registered.
//
// Example:
//
//	e, err := http.NewRouter(server, http.NewMetrics(nil), prometheus.DefaultGatherer, logger)
//	if err != nil {
//		return err
//	}
//	e.Logger.Fatal(e.Start(":8080"))
func NewRouter(server *Server, metrics *Metrics, gatherer prometheus.Gatherer, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.Load(context.Background())
	if err != nil {
		return nil, err
	}

	validation, err := openAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	if err = registerSwaggerDoc(doc); err != nil {
		return nil, fmt.Errorf("register swagger document: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(metrics.Middleware())
	e.Use(validation)

	e.GET("/health", server.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, "")

	return e, nil
}

// errorHandler writes errors that never reached a Server method, such as
// unknown routes or parameters the generated wrapper could not bind, in the
// same {"code", "message"} shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := errorResponse(err)
	if c.Request().Method == echo.HEAD {
		_ = c.NoContent(resp.Code)
		return
	}
	_ = c.JSON(resp.Code, resp)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}

			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.Any("error", v.Error))
			}
			if v.Status >= 500 {
				level = slog.LevelError
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
