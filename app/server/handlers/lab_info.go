package handlers

import (
	"errors"
	"net/http"

	"gilab-api/app/server/constants"
	"gilab-api/app/server/models"
	"gilab-api/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) labInfoMapFields(req *types.LabInfoUpsertRequest, info *models.LabInfo) {
	info.LabName = req.LabName
	info.PrincipalInvestigator = req.PrincipalInvestigator
	info.PiTitle = req.PiTitle
	info.Address = req.Address
	info.University = req.University
	info.Department = req.Department
	info.ContactEmail = req.ContactEmail

	if req.PiEmail != nil {
		info.PiEmail = *req.PiEmail
	}
	if req.PiPhone != nil {
		info.PiPhone = *req.PiPhone
	}
	if req.PiPhoto != nil {
		info.PiPhoto = *req.PiPhoto
	}
	if req.PiBio != nil {
		info.PiBio = *req.PiBio
	}
	if req.Description != nil {
		info.Description = *req.Description
	}
	if req.Latitude != nil {
		info.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		info.Longitude = *req.Longitude
	}
	if req.Building != nil {
		info.Building = *req.Building
	}
	if req.Room != nil {
		info.Room = *req.Room
	}
	if req.Website != nil {
		info.Website = *req.Website
	}
	if req.EstablishedYear != nil {
		info.EstablishedYear = *req.EstablishedYear
	}
	if req.ResearchFocus != nil {
		info.ResearchFocus = *req.ResearchFocus
	}
	if req.ContactPhone != nil {
		info.ContactPhone = *req.ContactPhone
	}
	if req.OfficeHours != nil {
		info.OfficeHours = *req.OfficeHours
	}
}

func (a *App) LabInfoGet(c echo.Context) error {
	rctx := c.Request().Context()

	var info models.LabInfo
	if err := a.db.WithContext(rctx).First(&info, "id = ?", constants.LabInfoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 还没录入时返回 200 + null ，前端据此展示空页面
			return c.JSON(http.StatusOK, nil)
		} else {
			a.l.Error("failed to get lab info", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, types.NewLabInfoResponse(&info))
}

func (a *App) LabInfoUpsert(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.LabInfoUpsertRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err = c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 单例行：存在就更新，不存在就以固定 ID 创建
	var info models.LabInfo
	if err := a.db.WithContext(rctx).First(&info, "id = ?", constants.LabInfoID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			a.l.Error("failed to get lab info", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}

		info.ID = constants.LabInfoID
		a.labInfoMapFields(&req, &info)
		if err := a.db.WithContext(rctx).Create(&info).Error; err != nil {
			a.l.Error("failed to create lab info", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	} else {
		a.labInfoMapFields(&req, &info)
		if err := a.db.WithContext(rctx).Save(&info).Error; err != nil {
			a.l.Error("failed to update lab info", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, types.NewLabInfoResponse(&info))
}
