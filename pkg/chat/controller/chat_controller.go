package controller

import "github.com/labstack/echo/v4"

type ChatController interface {
	Send(c echo.Context) error
	History(c echo.Context) error
	ClearHistory(c echo.Context) error
	GrowSummary(c echo.Context) error
}
