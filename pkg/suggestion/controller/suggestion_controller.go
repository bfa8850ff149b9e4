package controller

import "github.com/labstack/echo/v4"

type SuggestionController interface {
	Submit(c echo.Context) error
	Mine(c echo.Context) error
	Withdraw(c echo.Context) error
	Queue(c echo.Context) error
	Approve(c echo.Context) error
	Reject(c echo.Context) error
}
