package controller

import "github.com/labstack/echo/v4"

type LibraryController interface {
	ListSpecies(c echo.Context) error
	GetSpecies(c echo.Context) error
	ListStrains(c echo.Context) error
	CreateSpecies(c echo.Context) error
	UpdateSpecies(c echo.Context) error
	DeleteSpecies(c echo.Context) error
	CreateStrain(c echo.Context) error
	UpdateStrain(c echo.Context) error
	DeleteStrain(c echo.Context) error
	Import(c echo.Context) error
}
