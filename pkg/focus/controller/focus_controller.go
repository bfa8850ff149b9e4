package controller

import "github.com/labstack/echo/v4"

type FocusController interface {
	Today(c echo.Context) error
}
