package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/entities"
	"mycolab/pkg/auth/controller"
	"mycolab/pkg/httpx"
	"mycolab/pkg/middleware"
)

type profileGetter interface {
	GetProfile(uid string) (*entities.UserProfile, error)
}

type AuthCtrl struct {
	profiles profileGetter
	devMode  bool
}

var _ controller.AuthController = (*AuthCtrl)(nil)

func New(profiles profileGetter, devMode bool) *AuthCtrl {
	return &AuthCtrl{profiles: profiles, devMode: devMode}
}

// DevLogin switches the dev session to ?uid= (default dev-user). It does not
// exist in header mode.
func (h *AuthCtrl) DevLogin(c echo.Context) error {
	if !h.devMode {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "dev login is disabled"})
	}
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = middleware.DefaultDevUser
	}
	c.SetCookie(middleware.SessionCookie(uid))
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *AuthCtrl) WhoAmI(c echo.Context) error {
	uid := httpx.UID(c)
	p, err := h.profiles.GetProfile(uid)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"uid":          uid,
		"display_name": p.DisplayName,
		"is_admin":     p.IsAdmin,
	})
}
