package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes 绑定所有 API 路由
func (a *App) RegisterRoutes(e *echo.Echo) {
	e.GET("/", a.Root)
	e.GET("/health", a.HealthCheck)

	e.POST("/auth/register", a.Register)
	e.POST("/auth/login", a.Login)
	e.POST("/auth/logout", a.Logout)
	e.GET("/auth/user", a.CurrentUser)

	e.GET("/admin/pending-users", a.PendingUserList)
	e.POST("/admin/approve-user/:id", a.ApproveUser)

	e.GET("/publications", a.PublicationList)
	e.GET("/publications/recent", a.PublicationRecentList)
	e.POST("/publications", a.PublicationCreate)
	e.PUT("/publications/:id", a.PublicationUpdate)
	e.PUT("/publications/:id/order", a.PublicationSetOrder)
	e.POST("/publications/:id/move-up", a.PublicationMoveUp)
	e.POST("/publications/:id/move-down", a.PublicationMoveDown)
	e.DELETE("/publications/:id", a.PublicationDelete)

	e.GET("/research-projects", a.ResearchProjectList)
	e.POST("/research-projects", a.ResearchProjectCreate)

	e.GET("/news", a.NewsList)
	e.GET("/news/:id", a.NewsGet)
	e.POST("/news", a.NewsCreate)
	e.PUT("/news/:id", a.NewsUpdate)
	e.DELETE("/news/:id", a.NewsDelete)

	e.GET("/members", a.MemberList)
	e.POST("/members", a.MemberCreate)
	e.PUT("/members/:id", a.MemberUpdate)
	e.DELETE("/members/:id", a.MemberDelete)

	e.GET("/research-areas", a.ResearchAreaList)
	e.GET("/research-areas/:id", a.ResearchAreaGet)
	e.POST("/research-areas", a.ResearchAreaCreate)
	e.PUT("/research-areas/:id", a.ResearchAreaUpdate)
	e.PUT("/research-areas/:id/order", a.ResearchAreaSetOrder)
	e.POST("/research-areas/:id/move-up", a.ResearchAreaMoveUp)
	e.POST("/research-areas/:id/move-down", a.ResearchAreaMoveDown)
	e.DELETE("/research-areas/:id", a.ResearchAreaDelete)

	e.GET("/lab-info", a.LabInfoGet)
	e.PUT("/lab-info", a.LabInfoUpsert)

	e.POST("/upload", a.UploadImage)
}
