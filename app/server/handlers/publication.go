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
	"gorm.io/gorm/clause"
)

// publicationMapFields 按白名单合并部分更新，缺省的字段保持原值
func (a *App) publicationMapFields(req *types.PublicationUpdateRequest, pub *models.Publication) {
	if req.Title != nil {
		pub.Title = *req.Title
	}
	if req.Journal != nil {
		pub.Journal = *req.Journal
	}
	if req.Conference != nil {
		pub.Conference = *req.Conference
	}
	if req.Year != nil {
		pub.Year = *req.Year
	}
	if req.Type != nil {
		pub.Type = *req.Type
	}
	if req.Abstract != nil {
		pub.Abstract = *req.Abstract
	}
	if req.PdfURL != nil {
		pub.PdfURL = *req.PdfURL
	}
	if req.ImageURL != nil {
		pub.ImageURL = *req.ImageURL
	}
	if req.Order != nil {
		pub.DisplayOrder = *req.Order
	}
}

func authorsFromInputs(inputs []types.AuthorInput) []models.Author {
	authors := make([]models.Author, 0, len(inputs))
	for idx, in := range inputs {
		author := models.Author{
			Name:         in.Name,
			DisplayOrder: idx, // 不传 order 时按数组下标
		}
		if in.Homepage != nil {
			author.Homepage = *in.Homepage
		}
		if in.Order != nil {
			author.DisplayOrder = *in.Order
		}
		authors = append(authors, author)
	}
	return authors
}

func preloadAuthors(db *gorm.DB) *gorm.DB {
	return db.Preload("Authors", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	})
}

func (a *App) PublicationList(c echo.Context) error {
	rctx := c.Request().Context()

	query := preloadAuthors(a.db.WithContext(rctx)).Order("display_order ASC")

	// 按年份过滤
	if yearStr := c.QueryParam("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return a.er(c, http.StatusBadRequest)
		}
		query = query.Where("year = ?", year)
	}

	var pubs []models.Publication
	if err := query.Find(&pubs).Error; err != nil {
		a.l.Error("failed to list publications", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resPubs := []types.PublicationResponse{}
	for i := range pubs {
		resPubs = append(resPubs, *types.NewPublicationResponse(&pubs[i]))
	}

	return c.JSON(http.StatusOK, resPubs)
}

func (a *App) PublicationRecentList(c echo.Context) error {
	rctx := c.Request().Context()

	limit := 5
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			return a.er(c, http.StatusBadRequest)
		}
		limit = parsed
	}

	var pubs []models.Publication
	if err := preloadAuthors(a.db.WithContext(rctx)).
		Order("year DESC").Order("display_order ASC").
		Limit(limit).
		Find(&pubs).Error; err != nil {
		a.l.Error("failed to list recent publications", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resPubs := []types.PublicationResponse{}
	for i := range pubs {
		resPubs = append(resPubs, *types.NewPublicationResponse(&pubs[i]))
	}

	return c.JSON(http.StatusOK, resPubs)
}

func (a *App) PublicationCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.PublicationCreateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err = c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 创建论文，作者列表随论文一起写入
	pub := models.Publication{
		Title:    req.PublicationData.Title,
		Year:     req.PublicationData.Year,
		Type:     req.PublicationData.Type,
		Abstract: req.PublicationData.Abstract,
		AuthorID: user.ID,
		Authors:  authorsFromInputs(req.AuthorsData),
	}
	if req.PublicationData.Journal != nil {
		pub.Journal = *req.PublicationData.Journal
	}
	if req.PublicationData.Conference != nil {
		pub.Conference = *req.PublicationData.Conference
	}
	if req.PublicationData.PdfURL != nil {
		pub.PdfURL = *req.PublicationData.PdfURL
	}
	if req.PublicationData.ImageURL != nil {
		pub.ImageURL = *req.PublicationData.ImageURL
	}
	if req.PublicationData.Order != nil {
		pub.DisplayOrder = *req.PublicationData.Order
	}

	if err := a.db.WithContext(rctx).Create(&pub).Error; err != nil {
		a.l.Error("failed to create publication", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, types.NewPublicationResponse(&pub))
}

func (a *App) PublicationUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 绑定请求体
	var req types.PublicationUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err = c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的论文
	var pub models.Publication
	if err := preloadAuthors(a.db.WithContext(rctx)).First(&pub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get publication", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.publicationMapFields(&req, &pub)

	// authors_data 优先；两个字段都缺省时作者列表保持不动
	effectiveAuthors := req.AuthorsData
	if effectiveAuthors == nil {
		effectiveAuthors = req.Authors
	}

	// 字段更新和作者整体替换必须是同一个事务
	if err := a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&pub).Error; err != nil {
			return err
		}

		if effectiveAuthors != nil {
			if err := tx.Where("publication_id = ?", pub.ID).Delete(&models.Author{}).Error; err != nil {
				return err
			}

			newAuthors := authorsFromInputs(*effectiveAuthors)
			for i := range newAuthors {
				newAuthors[i].PublicationID = pub.ID
			}
			if len(newAuthors) > 0 {
				if err := tx.Create(&newAuthors).Error; err != nil {
					return err
				}
			}
			pub.Authors = newAuthors
		}

		return nil
	}); err != nil {
		a.l.Error("failed to update publication", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, types.NewPublicationResponse(&pub))
}

func (a *App) PublicationSetOrder(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 直接覆盖排序值，不查重也不重排，数值的连贯性由调用方负责
	order, err := strconv.Atoi(c.QueryParam("order"))
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var pub models.Publication
	if err := preloadAuthors(a.db.WithContext(rctx)).First(&pub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get publication", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	if err := a.db.WithContext(rctx).Model(&pub).Update("display_order", order).Error; err != nil {
		a.l.Error("failed to update publication order", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, types.NewPublicationResponse(&pub))
}

func (a *App) PublicationMoveUp(c echo.Context) error {
	return a.publicationMove(c, true)
}

func (a *App) PublicationMoveDown(c echo.Context) error {
	return a.publicationMove(c, false)
}

func (a *App) publicationMove(c echo.Context, up bool) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 论文在同一年份内排序
	moved, err, statusCode := moveOrdered(rctx, a.db, id, up,
		func(tx *gorm.DB, current *models.Publication) *gorm.DB {
			return tx.Where("year = ?", current.Year)
		},
		func(pub *models.Publication) int { return pub.DisplayOrder },
	)
	if err != nil {
		a.l.Error("failed to move publication", zap.String("id", id), zap.Bool("up", up), zap.Error(err))
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, &types.MoveResult{Moved: moved})
}

func (a *App) PublicationDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	var pub models.Publication
	if err := a.db.WithContext(rctx).First(&pub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get publication", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 作者随论文级联删除，两次删除放在同一个事务里
	if err := a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publication_id = ?", pub.ID).Delete(&models.Author{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pub).Error
	}); err != nil {
		a.l.Error("failed to delete publication", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
