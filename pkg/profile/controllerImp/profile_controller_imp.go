package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/httpx"
	"mycolab/pkg/profile/controller"
	"mycolab/pkg/profile/service"
)

type ProfileCtrl struct{ s service.ProfileService }

var _ controller.ProfileController = (*ProfileCtrl)(nil)

func New(s service.ProfileService) *ProfileCtrl { return &ProfileCtrl{s} }

func (h *ProfileCtrl) GetProfile(c echo.Context) error {
	p, err := h.s.GetProfile(httpx.UID(c))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) UpdateProfile(c echo.Context) error {
	var req service.ProfilePatch
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	p, err := h.s.UpdateProfile(httpx.UID(c), req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) GetSettings(c echo.Context) error {
	st, err := h.s.GetSettings(httpx.UID(c))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *ProfileCtrl) UpdateSettings(c echo.Context) error {
	var req service.SettingsPatch
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	st, err := h.s.UpdateSettings(httpx.UID(c), req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, st)
}
