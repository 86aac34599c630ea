package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sarigr/uni-schedule/core/logger"
)

// Middleware bundles the cross-cutting echo middlewares used by the routers.
type Middleware struct{}

func New() *Middleware {
	return &Middleware{}
}

// RequestLogger logs every request with method, path, status and latency.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			logger.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency", time.Since(start).String(),
			)
			return nil
		}
	}
}
