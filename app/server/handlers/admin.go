package handlers

import (
	"errors"
	"net/http"

	"gilab-api/app/server/models"
	"gilab-api/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) PendingUserList(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var users []models.User
	if err := a.db.WithContext(rctx).
		Order("created_at ASC").
		Find(&users, "is_approved = ?", false).Error; err != nil {
		a.l.Error("failed to list pending users", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resUsers := []types.UserResponse{}
	for i := range users {
		resUsers = append(resUsers, *types.NewUserResponse(&users[i]))
	}

	return c.JSON(http.StatusOK, resUsers)
}

func (a *App) ApproveUser(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 从数据库中获得指定的用户
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get user", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 审批只会打开 is_approved ，永远不会动 is_admin
	if err := a.db.WithContext(rctx).Model(&user).Update("is_approved", true).Error; err != nil {
		a.l.Error("failed to approve user", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, types.NewUserResponse(&user))
}
