package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/httpx"
	"mycolab/pkg/observation/controller"
	"mycolab/pkg/observation/service"
)

type ObservationCtrl struct{ s service.ObservationService }

var _ controller.ObservationController = (*ObservationCtrl)(nil)

func New(s service.ObservationService) *ObservationCtrl { return &ObservationCtrl{s} }

func (h *ObservationCtrl) Create(c echo.Context) error {
	var req service.ObservationInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	o, err := h.s.Create(httpx.UID(c), req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *ObservationCtrl) List(c echo.Context) error {
	out, err := h.s.List(httpx.UID(c), httpx.QueryID(c, "grow_id"), httpx.QueryID(c, "culture_id"))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ObservationCtrl) Update(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	var req service.ObservationPatch
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	o, err := h.s.Update(httpx.UID(c), id, req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *ObservationCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	if err := h.s.Delete(httpx.UID(c), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadPhoto takes a multipart form with the image in the "photo" field.
func (h *ObservationCtrl) UploadPhoto(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	fh, err := c.FormFile("photo")
	if err != nil {
		return httpx.BadRequest(c, "photo file required")
	}
	if fh.Size > service.MaxPhotoBytes {
		return httpx.BadRequest(c, "photo exceeds 10 MB")
	}
	f, err := fh.Open()
	if err != nil {
		return httpx.BadRequest(c, "cannot read photo")
	}
	defer f.Close()
	o, err := h.s.UploadPhoto(c.Request().Context(), httpx.UID(c), id, service.Photo{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, o)
}
