package controller

import "github.com/labstack/echo/v4"

type CultureController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Archive(c echo.Context) error
	Unarchive(c echo.Context) error
	Transfer(c echo.Context) error
}
