package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/httpx"
	"mycolab/pkg/inventory/controller"
	"mycolab/pkg/inventory/service"
)

type InventoryCtrl struct{ s service.InventoryService }

var _ controller.InventoryController = (*InventoryCtrl)(nil)

func New(s service.InventoryService) *InventoryCtrl { return &InventoryCtrl{s} }

func (h *InventoryCtrl) Create(c echo.Context) error {
	var req service.ItemInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	it, err := h.s.Create(httpx.UID(c), req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *InventoryCtrl) Get(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	it, err := h.s.Get(httpx.UID(c), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *InventoryCtrl) List(c echo.Context) error {
	out, err := h.s.List(httpx.UID(c), c.QueryParam("category"), c.QueryParam("include_archived") == "1")
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryCtrl) Update(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	var req service.ItemPatch
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	it, err := h.s.Update(httpx.UID(c), id, req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *InventoryCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	if err := h.s.Delete(httpx.UID(c), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *InventoryCtrl) Archive(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	it, err := h.s.Archive(httpx.UID(c), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *InventoryCtrl) Adjust(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	var req service.AdjustInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	it, err := h.s.Adjust(httpx.UID(c), id, req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *InventoryCtrl) LowStock(c echo.Context) error {
	out, err := h.s.LowStock(httpx.UID(c))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
