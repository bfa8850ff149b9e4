package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/export/controller"
	"mycolab/pkg/export/service"
	"mycolab/pkg/httpx"
)

type ExportCtrl struct{ s service.ExportService }

var _ controller.ExportController = (*ExportCtrl)(nil)

func New(s service.ExportService) *ExportCtrl { return &ExportCtrl{s} }

// GET /export/grows.xlsx
func (h *ExportCtrl) Grows(c echo.Context) error {
	// buffered so a failure can still be answered as JSON
	var buf bytes.Buffer
	if err := h.s.WriteGrows(&buf, httpx.UID(c)); err != nil {
		return httpx.Fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="grows.xlsx"`)
	return c.Blob(http.StatusOK, service.ContentType, buf.Bytes())
}
