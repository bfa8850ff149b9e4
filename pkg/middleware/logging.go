package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestLogger logs one line per request, skipping health checks.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.HasSuffix(c.Path(), "/health") {
				return next(c)
			}
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			status := c.Response().Status
			attrs := []any{
				"id", rid,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"dur", time.Since(start).Round(time.Microsecond),
			}
			if uid, ok := c.Get("uid").(string); ok && uid != "" {
				attrs = append(attrs, "uid", uid)
			}
			switch {
			case status >= 500:
				slog.Error("http", attrs...)
			case status >= 400:
				slog.Warn("http", attrs...)
			default:
				slog.Info("http", attrs...)
			}
			return nil
		}
	}
}

// ErrorHandler renders echo errors as {"error": ...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	var body any = map[string]string{"error": http.StatusText(status)}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch m := he.Message.(type) {
		case string:
			body = map[string]string{"error": m}
		case map[string]string, map[string]any, echo.Map:
			body = m
		default:
			body = map[string]string{"error": http.StatusText(status)}
		}
	}
	if status >= 500 {
		slog.Error("unhandled error", "path", c.Request().URL.Path, "err", err)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}
