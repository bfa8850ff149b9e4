package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/httpx"
	"mycolab/pkg/notification/controller"
	"mycolab/pkg/notification/service"
)

type NotificationCtrl struct{ s service.NotificationService }

var _ controller.NotificationController = (*NotificationCtrl)(nil)

func New(s service.NotificationService) *NotificationCtrl { return &NotificationCtrl{s} }

func (h *NotificationCtrl) List(c echo.Context) error {
	out, err := h.s.List(httpx.UID(c), c.QueryParam("unread") == "1")
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NotificationCtrl) UnreadCount(c echo.Context) error {
	n, err := h.s.UnreadCount(httpx.UID(c))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread": n})
}

func (h *NotificationCtrl) MarkRead(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	if err := h.s.MarkRead(httpx.UID(c), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationCtrl) MarkAllRead(c echo.Context) error {
	n, err := h.s.MarkAllRead(httpx.UID(c))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"updated": n})
}

func (h *NotificationCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	if err := h.s.Delete(httpx.UID(c), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
