package handlers

import (
	"net/http"

	"gilab-api/app/server/models"
	"gilab-api/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) ResearchProjectList(c echo.Context) error {
	rctx := c.Request().Context()

	var projects []models.ResearchProject
	if err := a.db.WithContext(rctx).
		Order("display_order ASC").
		Find(&projects).Error; err != nil {
		a.l.Error("failed to list research projects", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resProjects := []types.ResearchProjectResponse{}
	for i := range projects {
		resProjects = append(resProjects, *types.NewResearchProjectResponse(&projects[i]))
	}

	return c.JSON(http.StatusOK, resProjects)
}

func (a *App) ResearchProjectCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.ResearchProjectCreateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err = c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	project := models.ResearchProject{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Date:           req.Date,
		LeadResearcher: req.LeadResearcher,
		ImageURL:       req.ImageURL,
		AuthorID:       &user.ID,
	}
	if req.Order != nil {
		project.DisplayOrder = *req.Order
	}

	if err := a.db.WithContext(rctx).Create(&project).Error; err != nil {
		a.l.Error("failed to create research project", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, types.NewResearchProjectResponse(&project))
}
