package controller

import "github.com/labstack/echo/v4"

type NotificationController interface {
	List(c echo.Context) error
	UnreadCount(c echo.Context) error
	MarkRead(c echo.Context) error
	MarkAllRead(c echo.Context) error
	Delete(c echo.Context) error
}
