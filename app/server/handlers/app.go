package handlers

import (
	"gilab-api/app/server/config"
	"gilab-api/app/server/jwt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l   *zap.Logger    // 日志
	db  *gorm.DB       // 数据库
	jwt *jwt.JWT       // JWT ，用于无状态验证
	cfg *config.Config // 启动时加载一次的进程级配置
}

func NewApp(l *zap.Logger, db *gorm.DB, j *jwt.JWT, cfg *config.Config) *App {
	return &App{
		l:   l,
		db:  db,
		jwt: j,
		cfg: cfg,
	}
}
