package controller

import "github.com/labstack/echo/v4"

type ProfileController interface {
	GetProfile(c echo.Context) error
	UpdateProfile(c echo.Context) error
	GetSettings(c echo.Context) error
	UpdateSettings(c echo.Context) error
}
