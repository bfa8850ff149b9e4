package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type adminChecker interface {
	IsAdmin(uid string) (bool, error)
}

// RequireAdmin must run after the identity middleware.
func RequireAdmin(profiles adminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, _ := c.Get("uid").(string)
			ok, err := profiles.IsAdmin(uid)
			if err != nil {
				slog.Error("admin check", "uid", uid, "err", err)
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "admin check failed"})
			}
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin only"})
			}
			return next(c)
		}
	}
}
