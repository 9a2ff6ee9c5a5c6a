package handlers

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gilab-api/app/server/constants"
	"gilab-api/app/server/types"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) publicURL(c echo.Context, path string) string {
	if a.cfg.System.PublicBaseURL != "" {
		return a.cfg.System.PublicBaseURL + path
	}

	// 没有配置外部地址时回退到代理头，再回退到请求本身
	scheme := c.Request().Header.Get(echo.HeaderXForwardedProto)
	host := c.Request().Header.Get("X-Forwarded-Host")
	if scheme == "" {
		scheme = c.Scheme()
	}
	if host == "" {
		host = c.Request().Host
	}

	return fmt.Sprintf("%s://%s%s", scheme, host, path)
}

func (a *App) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		a.l.Error("failed to read form file", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 只接受图片
	if !strings.HasPrefix(fileHeader.Header.Get(echo.HeaderContentType), "image/") {
		return a.er(c, http.StatusBadRequest)
	}

	src, err := fileHeader.Open()
	if err != nil {
		a.l.Error("failed to open uploaded file", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer src.Close()

	if err := os.MkdirAll(constants.UploadDirPath, 0o755); err != nil {
		a.l.Error("failed to create upload dir", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 随机文件名，保留原扩展名
	id := uuid.New()
	filename := hex.EncodeToString(id[:]) + strings.ToLower(filepath.Ext(fileHeader.Filename))

	dst, err := os.Create(filepath.Join(constants.UploadDirPath, filename))
	if err != nil {
		a.l.Error("failed to create upload file", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		a.l.Error("failed to save upload file", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &types.UploadResponse{
		URL: a.publicURL(c, constants.UploadURLPrefix+"/"+filename),
	})
}
