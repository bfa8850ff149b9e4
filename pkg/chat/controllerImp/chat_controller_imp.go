package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/chat/controller"
	"mycolab/pkg/chat/service"
	"mycolab/pkg/httpx"
)

type ChatCtrl struct{ s service.ChatService }

var _ controller.ChatController = (*ChatCtrl)(nil)

func New(s service.ChatService) *ChatCtrl { return &ChatCtrl{s} }

func (h *ChatCtrl) Send(c echo.Context) error {
	var req service.ChatInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	msg, err := h.s.Send(c.Request().Context(), httpx.UID(c), req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reply": msg})
}

func (h *ChatCtrl) History(c echo.Context) error {
	out, err := h.s.History(httpx.UID(c))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ChatCtrl) ClearHistory(c echo.Context) error {
	n, err := h.s.ClearHistory(httpx.UID(c))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": n})
}

// GET /grows/:id/summary
func (h *ChatCtrl) GrowSummary(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	out, err := h.s.SummarizeGrow(c.Request().Context(), httpx.UID(c), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
