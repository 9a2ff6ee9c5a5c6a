package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gilab-api/app/server/models"
	"gilab-api/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) researchAreaMapFields(req *types.ResearchAreaUpdateRequest, area *models.ResearchArea) {
	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.Description != nil {
		area.Description = *req.Description
	}
	if req.ParentID != nil {
		area.ParentID = req.ParentID
	}
	if req.ImageURL != nil {
		area.ImageURL = *req.ImageURL
	}
	if req.Order != nil {
		area.DisplayOrder = *req.Order
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}
}

// 兄弟分组按父节点划分，顶层（ parent_id 为 NULL ）是一组
func researchAreaSiblingScope(tx *gorm.DB, current *models.ResearchArea) *gorm.DB {
	if current.ParentID == nil {
		return tx.Where("parent_id IS NULL")
	}
	return tx.Where("parent_id = ?", *current.ParentID)
}

func (a *App) ResearchAreaList(c echo.Context) error {
	rctx := c.Request().Context()

	query := a.db.WithContext(rctx).Order("display_order ASC")

	// 不传 parent_id 时列出顶层领域
	if parentID := c.QueryParam("parent_id"); parentID != "" {
		query = query.Where("parent_id = ?", parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}

	var areas []models.ResearchArea
	if err := query.Find(&areas).Error; err != nil {
		a.l.Error("failed to list research areas", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resAreas := []types.ResearchAreaResponse{}
	for i := range areas {
		resAreas = append(resAreas, *types.NewResearchAreaResponse(&areas[i]))
	}

	return c.JSON(http.StatusOK, resAreas)
}

func (a *App) ResearchAreaGet(c echo.Context) error {
	rctx := c.Request().Context()
	id := c.Param("id")

	var area models.ResearchArea
	if err := a.db.WithContext(rctx).First(&area, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get research area", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, types.NewResearchAreaResponse(&area))
}

func (a *App) ResearchAreaCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.ResearchAreaCreateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err = c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	area := models.ResearchArea{
		Name:     req.Name,
		ParentID: req.ParentID,
		IsActive: true,
	}
	if req.Description != nil {
		area.Description = *req.Description
	}
	if req.ImageURL != nil {
		area.ImageURL = *req.ImageURL
	}
	if req.Order != nil {
		area.DisplayOrder = *req.Order
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}

	if err := a.db.WithContext(rctx).Create(&area).Error; err != nil {
		a.l.Error("failed to create research area", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, types.NewResearchAreaResponse(&area))
}

func (a *App) ResearchAreaUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 绑定请求体
	var req types.ResearchAreaUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err = c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var area models.ResearchArea
	if err := a.db.WithContext(rctx).First(&area, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get research area", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.researchAreaMapFields(&req, &area)

	if err := a.db.WithContext(rctx).Save(&area).Error; err != nil {
		a.l.Error("failed to update research area", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, types.NewResearchAreaResponse(&area))
}

func (a *App) ResearchAreaSetOrder(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 直接覆盖排序值，不查重也不重排
	order, err := strconv.Atoi(c.QueryParam("order"))
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var area models.ResearchArea
	if err := a.db.WithContext(rctx).First(&area, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get research area", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	if err := a.db.WithContext(rctx).Model(&area).Update("display_order", order).Error; err != nil {
		a.l.Error("failed to update research area order", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, types.NewResearchAreaResponse(&area))
}

func (a *App) ResearchAreaMoveUp(c echo.Context) error {
	return a.researchAreaMove(c, true)
}

func (a *App) ResearchAreaMoveDown(c echo.Context) error {
	return a.researchAreaMove(c, false)
}

func (a *App) researchAreaMove(c echo.Context, up bool) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	moved, err, statusCode := moveOrdered(rctx, a.db, id, up,
		researchAreaSiblingScope,
		func(area *models.ResearchArea) int { return area.DisplayOrder },
	)
	if err != nil {
		a.l.Error("failed to move research area", zap.String("id", id), zap.Bool("up", up), zap.Error(err))
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, &types.MoveResult{Moved: moved})
}

func (a *App) ResearchAreaDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 子节点不随父节点删除，外键置空后成为顶层
	result := a.db.WithContext(rctx).Delete(&models.ResearchArea{}, "id = ?", id)
	if result.Error != nil {
		a.l.Error("failed to delete research area", zap.String("id", id), zap.Error(result.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if result.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}
