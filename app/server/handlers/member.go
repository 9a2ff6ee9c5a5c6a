package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gilab-api/app/server/models"
	"gilab-api/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) memberMapFields(req *types.MemberUpdateRequest, member *models.Member) {
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Degree != nil {
		member.Degree = *req.Degree
	}
	if req.Email != nil {
		member.Email = req.Email
	}
	if req.ImageURL != nil {
		member.ImageURL = *req.ImageURL
	}
	if req.Homepage != nil {
		member.Homepage = *req.Homepage
	}
	if req.JoinedAt != nil {
		member.JoinedAt = *req.JoinedAt
	}
	if req.Status != nil {
		member.Status = *req.Status
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.ResearchInterests != nil {
		member.ResearchInterests = *req.ResearchInterests
	}
}

// groupMembers 在读取时按学位 / 状态分组： status 为 alumni 的优先归入校友组
func groupMembers(members []models.Member) *types.GroupedMembersResponse {
	grouped := &types.GroupedMembersResponse{
		Masters:   []types.MemberResponse{},
		Bachelors: []types.MemberResponse{},
		Phd:       []types.MemberResponse{},
		Other:     []types.MemberResponse{},
		Alumni:    []types.MemberResponse{},
	}

	for i := range members {
		member := &members[i]
		res := *types.NewMemberResponse(member)

		if strings.ToLower(member.Status) == "alumni" {
			grouped.Alumni = append(grouped.Alumni, res)
			continue
		}

		degree := strings.ToLower(member.Degree)
		switch {
		case degree == "masters":
			grouped.Masters = append(grouped.Masters, res)
		case degree == "bachelors":
			grouped.Bachelors = append(grouped.Bachelors, res)
		case degree == "phd" || degree == "ph.d" || degree == "doctor":
			grouped.Phd = append(grouped.Phd, res)
		case strings.HasPrefix(degree, "master"):
			grouped.Masters = append(grouped.Masters, res)
		case strings.HasPrefix(degree, "bachelor"):
			grouped.Bachelors = append(grouped.Bachelors, res)
		default:
			grouped.Other = append(grouped.Other, res)
		}
	}

	return grouped
}

func (a *App) MemberList(c echo.Context) error {
	rctx := c.Request().Context()

	var members []models.Member
	if err := a.db.WithContext(rctx).
		Order("name ASC").
		Find(&members).Error; err != nil {
		a.l.Error("failed to list members", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, groupMembers(members))
}

func (a *App) MemberCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.MemberCreateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err = c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	member := models.Member{
		Name:     req.Name,
		Degree:   req.Degree,
		Email:    req.Email,
		JoinedAt: req.JoinedAt,
		Status:   "current",
	}
	if req.ImageURL != nil {
		member.ImageURL = *req.ImageURL
	}
	if req.Homepage != nil {
		member.Homepage = *req.Homepage
	}
	if req.Status != nil {
		member.Status = *req.Status
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.ResearchInterests != nil {
		member.ResearchInterests = *req.ResearchInterests
	}

	if err := a.db.WithContext(rctx).Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.er(c, http.StatusBadRequest)
		}
		a.l.Error("failed to create member", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, types.NewMemberResponse(&member))
}

func (a *App) MemberUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 绑定请求体
	var req types.MemberUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err = c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var member models.Member
	if err := a.db.WithContext(rctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get member", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.memberMapFields(&req, &member)

	if err := a.db.WithContext(rctx).Save(&member).Error; err != nil {
		a.l.Error("failed to update member", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, types.NewMemberResponse(&member))
}

func (a *App) MemberDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	result := a.db.WithContext(rctx).Delete(&models.Member{}, "id = ?", id)
	if result.Error != nil {
		a.l.Error("failed to delete member", zap.String("id", id), zap.Error(result.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if result.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}
