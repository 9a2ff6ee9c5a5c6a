package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gilab-api/app/server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// authUser 提取并验证 Bearer 令牌，再按令牌里的邮箱解析出用户记录
func (a *App) authUser(c echo.Context) (*models.User, error, int) {
	// 提取 token
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, fmt.Errorf("missing auth token"), http.StatusUnauthorized
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 {
		return nil, fmt.Errorf("invalid auth header: %s", authHeader), http.StatusUnauthorized
	}

	if strings.ToLower(splits[0]) != "bearer" {
		return nil, fmt.Errorf("unknown auth method: %s", splits[0]), http.StatusUnauthorized
	}

	// 验证 token
	jwtUser, err := a.jwt.ParseUser(splits[1])
	if err != nil {
		// 无效的 token
		return nil, fmt.Errorf("failed to parse token: %w", err), http.StatusUnauthorized
	}

	// 令牌有效也必须能对应到现有用户（例如用户被删除后令牌自然失效）
	var user models.User
	if err := a.db.WithContext(c.Request().Context()).First(&user, "email = ?", jwtUser.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no user for token subject"), http.StatusUnauthorized
		} else {
			return nil, fmt.Errorf("failed to find user: %w", err), http.StatusInternalServerError
		}
	}

	return &user, nil, http.StatusOK
}

// authAdmin 在 authUser 之上再要求管理员权限
func (a *App) authAdmin(c echo.Context) (*models.User, error, int) {
	user, err, statusCode := a.authUser(c)
	if err != nil {
		return nil, err, statusCode
	}

	// 验证权限
	if !user.IsAdmin {
		return nil, fmt.Errorf("requires admin role"), http.StatusForbidden
	}

	return user, nil, http.StatusOK
}
