package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const UserHeader = "X-User-Id"

// HeaderAuth takes the user id from X-User-Id, set by the auth proxy in front
// of the API. Requests without it get 401.
func HeaderAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get(UserHeader))
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + UserHeader})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

// Identity picks the middleware for AUTH_MODE.
func Identity(mode string) echo.MiddlewareFunc {
	if mode == "header" {
		return HeaderAuth()
	}
	return DevLogin()
}
