package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/httpx"
	"mycolab/pkg/suggestion/controller"
	"mycolab/pkg/suggestion/service"
)

type SuggestionCtrl struct{ s service.SuggestionService }

var _ controller.SuggestionController = (*SuggestionCtrl)(nil)

func New(s service.SuggestionService) *SuggestionCtrl { return &SuggestionCtrl{s} }

func (h *SuggestionCtrl) Submit(c echo.Context) error {
	var req service.SuggestionInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.Submit(httpx.UID(c), req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SuggestionCtrl) Mine(c echo.Context) error {
	out, err := h.s.Mine(httpx.UID(c))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SuggestionCtrl) Withdraw(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	if err := h.s.Withdraw(httpx.UID(c), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SuggestionCtrl) Queue(c echo.Context) error {
	out, err := h.s.Queue(c.QueryParam("status"))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SuggestionCtrl) review(c echo.Context, fn func(reviewer string, id uint, in service.ReviewInput) (any, error)) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	var req service.ReviewInput
	if c.Request().ContentLength != 0 {
		if err := httpx.Bind(c, &req); err != nil {
			return err
		}
	}
	out, err := fn(httpx.UID(c), id, req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SuggestionCtrl) Approve(c echo.Context) error {
	return h.review(c, func(reviewer string, id uint, in service.ReviewInput) (any, error) {
		return h.s.Approve(reviewer, id, in)
	})
}

func (h *SuggestionCtrl) Reject(c echo.Context) error {
	return h.review(c, func(reviewer string, id uint, in service.ReviewInput) (any, error) {
		return h.s.Reject(reviewer, id, in)
	})
}
