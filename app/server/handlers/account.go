package handlers

import (
	"errors"
	"net/http"

	"gilab-api/app/server/models"
	"gilab-api/app/server/types"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) Register(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.RegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 邮箱已被占用时返回和其它客户端错误一样的笼统信息，不暴露具体字段
	var existing models.User
	if err := a.db.WithContext(rctx).First(&existing, "email = ?", req.Email).Error; err == nil {
		return a.er(c, http.StatusBadRequest)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		a.l.Error("failed to check existing user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建用户：注册渠道永远不产生管理员，审批前不能登录
	user := models.User{
		Email:      req.Email,
		Password:   passwordHash,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		IsApproved: false,
		IsAdmin:    false,
	}
	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 与上面的检查存在并发窗口，数据库唯一索引兜底
			return a.er(c, http.StatusBadRequest)
		}
		a.l.Error("failed to create user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, types.NewUserResponse(&user))
}

func (a *App) Login(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusUnauthorized)
		} else {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match {
		// 密码不一致
		return a.er(c, http.StatusUnauthorized)
	}

	// 未审批的账户拒绝登录，但响应体与密码错误完全相同，避免泄露审批状态
	if !user.IsApproved {
		return a.er(c, http.StatusUnauthorized)
	}

	// 签出 JWT
	token, _, err := a.jwt.SignUser(user.Email)
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 返回
	return c.JSON(http.StatusOK, &types.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *types.NewUserResponse(&user),
	})
}

func (a *App) Logout(c echo.Context) error {
	// 没有服务端会话可销毁，令牌到期自然失效，登出只是客户端行为
	return c.JSON(http.StatusOK, &types.Message{
		Message: "Logout successful",
	})
}

func (a *App) CurrentUser(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, types.NewUserResponse(user))
}
