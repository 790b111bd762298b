package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth guards the admin routes. An empty key disables them.
func APIKeyAuth(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := c.Request().Header.Get(apiKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or missing API key"})
			}
			return next(c)
		}
	}
}

func RequestLogger(log logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			log.Info("http request",
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				zap.String("method", req.Method),
				zap.String("path", c.Path()),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
			)
			return nil
		}
	}
}
