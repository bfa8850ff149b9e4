package controller

import "github.com/labstack/echo/v4"

type InventoryController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Archive(c echo.Context) error
	Adjust(c echo.Context) error
	LowStock(c echo.Context) error
}
