package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the GILab API",
	})
}

func (a *App) HealthCheck(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
