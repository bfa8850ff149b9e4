package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/culture/controller"
	"mycolab/pkg/culture/service"
	"mycolab/pkg/httpx"
)

type CultureCtrl struct{ s service.CultureService }

var _ controller.CultureController = (*CultureCtrl)(nil)

func New(s service.CultureService) *CultureCtrl { return &CultureCtrl{s} }

func (h *CultureCtrl) Create(c echo.Context) error {
	var req service.CultureInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.Create(httpx.UID(c), req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CultureCtrl) Get(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	out, err := h.s.Get(httpx.UID(c), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CultureCtrl) List(c echo.Context) error {
	out, err := h.s.List(httpx.UID(c), c.QueryParam("include_archived") == "1")
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CultureCtrl) Update(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	var req service.CulturePatch
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.Update(httpx.UID(c), id, req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CultureCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	if err := h.s.Delete(httpx.UID(c), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CultureCtrl) Archive(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	out, err := h.s.Archive(httpx.UID(c), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CultureCtrl) Unarchive(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	out, err := h.s.Unarchive(httpx.UID(c), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CultureCtrl) Transfer(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	var req service.TransferInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.Transfer(httpx.UID(c), id, req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
