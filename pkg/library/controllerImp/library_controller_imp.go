package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/httpx"
	"mycolab/pkg/library/controller"
	"mycolab/pkg/library/service"
)

type LibraryCtrl struct{ s service.LibraryService }

var _ controller.LibraryController = (*LibraryCtrl)(nil)

func New(s service.LibraryService) *LibraryCtrl { return &LibraryCtrl{s} }

func (h *LibraryCtrl) ListSpecies(c echo.Context) error {
	out, err := h.s.ListSpecies(c.QueryParam("q"))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LibraryCtrl) GetSpecies(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	out, err := h.s.GetSpecies(id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LibraryCtrl) ListStrains(c echo.Context) error {
	out, err := h.s.ListStrains(httpx.QueryID(c, "species_id"), c.QueryParam("q"))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LibraryCtrl) CreateSpecies(c echo.Context) error {
	var req service.SpeciesInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.CreateSpecies(req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *LibraryCtrl) UpdateSpecies(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	var req service.SpeciesInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.UpdateSpecies(id, req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LibraryCtrl) DeleteSpecies(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	if err := h.s.DeleteSpecies(id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LibraryCtrl) CreateStrain(c echo.Context) error {
	var req service.StrainInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.CreateStrain(req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *LibraryCtrl) UpdateStrain(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	var req service.StrainInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.UpdateStrain(id, req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LibraryCtrl) DeleteStrain(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	if err := h.s.DeleteStrain(id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LibraryCtrl) Import(c echo.Context) error {
	var req service.ImportInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.ImportSpecies(c.Request().Context(), req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
