package controller

import "github.com/labstack/echo/v4"

type ExportController interface {
	Grows(c echo.Context) error
}
