package handlers

import (
	"net/http"

	"gilab-api/app/server/types"

	"github.com/labstack/echo/v4"
)

func (a *App) er(c echo.Context, statusCode int) error {
	// 认证失败时带上期望的认证方式
	if statusCode == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}

	return c.JSON(statusCode, &types.ErrorMessage{
		Message: http.StatusText(statusCode),
	})
}
