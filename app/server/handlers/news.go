package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gilab-api/app/server/models"
	"gilab-api/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) newsMapFields(req *types.NewsUpdateRequest, news *models.News) {
	if req.Title != nil {
		news.Title = *req.Title
	}
	if req.Content != nil {
		news.Content = *req.Content
	}
	if req.Summary != nil {
		news.Summary = *req.Summary
	}
	if req.ImageURL != nil {
		news.ImageURL = *req.ImageURL
	}
}

func (a *App) NewsList(c echo.Context) error {
	rctx := c.Request().Context()

	query := a.db.WithContext(rctx).Order("published_at DESC")

	// limit 参数只取最近的若干条
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return a.er(c, http.StatusBadRequest)
		}
		query = query.Limit(limit)
	}

	var newsItems []models.News
	if err := query.Find(&newsItems).Error; err != nil {
		a.l.Error("failed to list news", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resNews := []types.NewsResponse{}
	for i := range newsItems {
		resNews = append(resNews, *types.NewNewsResponse(&newsItems[i]))
	}

	return c.JSON(http.StatusOK, resNews)
}

func (a *App) NewsGet(c echo.Context) error {
	rctx := c.Request().Context()
	id := c.Param("id")

	var news models.News
	if err := a.db.WithContext(rctx).First(&news, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get news", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, types.NewNewsResponse(&news))
}

func (a *App) NewsCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.NewsCreateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err = c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	news := models.News{
		Title:       req.Title,
		Content:     req.Content,
		PublishedAt: time.Now(),
		IsPublished: true,
		AuthorID:    user.ID,
	}
	if req.Summary != nil {
		news.Summary = *req.Summary
	}
	if req.ImageURL != nil {
		news.ImageURL = *req.ImageURL
	}

	if err := a.db.WithContext(rctx).Create(&news).Error; err != nil {
		a.l.Error("failed to create news", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, types.NewNewsResponse(&news))
}

func (a *App) NewsUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 绑定请求体
	var req types.NewsUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	var news models.News
	if err := a.db.WithContext(rctx).First(&news, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get news", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.newsMapFields(&req, &news)

	if err := a.db.WithContext(rctx).Save(&news).Error; err != nil {
		a.l.Error("failed to update news", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, types.NewNewsResponse(&news))
}

func (a *App) NewsDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	result := a.db.WithContext(rctx).Delete(&models.News{}, "id = ?", id)
	if result.Error != nil {
		a.l.Error("failed to delete news", zap.String("id", id), zap.Error(result.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if result.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}
