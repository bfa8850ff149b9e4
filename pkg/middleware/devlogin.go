package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	CookieName     = "MYCOLAB_UID"
	DefaultDevUser = "dev-user"
)

// DevLogin trusts the MYCOLAB_UID cookie or ?uid= and falls back to the dev
// user. Local development only.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(CookieName); err == nil {
				uid = ck.Value
			}
			if q := c.QueryParam("uid"); q != "" && q != uid {
				uid = q
				c.SetCookie(SessionCookie(uid))
			}
			if uid == "" {
				uid = DefaultDevUser
				c.SetCookie(SessionCookie(uid))
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

func SessionCookie(uid string) *http.Cookie {
	return &http.Cookie{Name: CookieName, Value: uid, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}
}
