package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/focus/controller"
	"mycolab/pkg/focus/service"
	"mycolab/pkg/httpx"
)

type FocusCtrl struct{ s service.FocusService }

var _ controller.FocusController = (*FocusCtrl)(nil)

func New(s service.FocusService) *FocusCtrl { return &FocusCtrl{s} }

// Today is recomputed on every request.
func (h *FocusCtrl) Today(c echo.Context) error {
	f, err := h.s.Today(c.Request().Context(), httpx.UID(c))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, f)
}
