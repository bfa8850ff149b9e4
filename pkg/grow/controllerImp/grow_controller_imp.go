package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/grow/controller"
	"mycolab/pkg/grow/service"
	"mycolab/pkg/httpx"
)

type GrowCtrl struct{ s service.GrowService }

var _ controller.GrowController = (*GrowCtrl)(nil)

func New(s service.GrowService) *GrowCtrl { return &GrowCtrl{s} }

// byID runs fn for the :id path parameter and renders its result.
func (h *GrowCtrl) byID(c echo.Context, fn func(uid string, id uint) (any, error)) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	out, err := fn(httpx.UID(c), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GrowCtrl) Create(c echo.Context) error {
	var req service.GrowInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	g, err := h.s.Create(httpx.UID(c), req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GrowCtrl) Get(c echo.Context) error {
	return h.byID(c, func(uid string, id uint) (any, error) { return h.s.Get(uid, id) })
}

func (h *GrowCtrl) List(c echo.Context) error {
	out, err := h.s.List(httpx.UID(c), c.QueryParam("stage"), c.QueryParam("include_archived") == "1")
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GrowCtrl) Update(c echo.Context) error {
	var req service.GrowPatch
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	return h.byID(c, func(uid string, id uint) (any, error) { return h.s.Update(uid, id, req) })
}

func (h *GrowCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	if err := h.s.Delete(httpx.UID(c), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *GrowCtrl) Archive(c echo.Context) error {
	return h.byID(c, func(uid string, id uint) (any, error) { return h.s.Archive(uid, id) })
}

func (h *GrowCtrl) Unarchive(c echo.Context) error {
	return h.byID(c, func(uid string, id uint) (any, error) { return h.s.Unarchive(uid, id) })
}

func (h *GrowCtrl) ChangeStage(c echo.Context) error {
	var req service.StageInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	return h.byID(c, func(uid string, id uint) (any, error) { return h.s.ChangeStage(uid, id, req) })
}

func (h *GrowCtrl) Advance(c echo.Context) error {
	return h.byID(c, func(uid string, id uint) (any, error) { return h.s.Advance(uid, id) })
}

func (h *GrowCtrl) Board(c echo.Context) error {
	cols, err := h.s.Board(httpx.UID(c))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"columns": cols})
}

func (h *GrowCtrl) History(c echo.Context) error {
	return h.byID(c, func(uid string, id uint) (any, error) { return h.s.History(uid, id) })
}

func (h *GrowCtrl) Stats(c echo.Context) error {
	return h.byID(c, func(uid string, id uint) (any, error) { return h.s.Stats(uid, id) })
}

func (h *GrowCtrl) ListFlushes(c echo.Context) error {
	return h.byID(c, func(uid string, id uint) (any, error) { return h.s.ListFlushes(uid, id) })
}

func (h *GrowCtrl) AddFlush(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	var req service.FlushInput
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	f, err := h.s.AddFlush(httpx.UID(c), id, req)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *GrowCtrl) DeleteFlush(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "bad id")
	}
	if err := h.s.DeleteFlush(httpx.UID(c), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

