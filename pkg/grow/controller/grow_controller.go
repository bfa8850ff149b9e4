package controller

import "github.com/labstack/echo/v4"

type GrowController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Archive(c echo.Context) error
	Unarchive(c echo.Context) error
	ChangeStage(c echo.Context) error
	Advance(c echo.Context) error
	Board(c echo.Context) error
	History(c echo.Context) error
	Stats(c echo.Context) error
	ListFlushes(c echo.Context) error
	AddFlush(c echo.Context) error
	DeleteFlush(c echo.Context) error
}
