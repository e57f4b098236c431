package telemetry

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Serve exposes /metrics and /healthz on addr in a background goroutine.
// Returns immediately; listen failures are logged, never fatal. A blank addr
// disables the listener entirely.
func Serve(addr string, logger zerolog.Logger) {
	if addr == "" {
		return
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	go func() {
		logger.Info().Str("addr", addr).Msg("metrics listener started")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Warn().Err(err).Msg("metrics listener stopped")
		}
	}()
}
