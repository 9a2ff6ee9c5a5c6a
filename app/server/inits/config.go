package inits

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gilab-api/app/server/config"
	"gilab-api/app/server/constants"
)

func Config() (cfg *config.Config, err error) {
	cfg = &config.Config{}

	// 手动配置映射，启动时读取一次，之后不再变化
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":8000" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	// 末尾的 / 会在拼接上传地址时重复，这里直接去掉
	cfg.System.PublicBaseURL = strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")

	if sigsk, exist := os.LookupEnv("SECRET_KEY"); !exist {
		// 开发用默认值，部署环境必须覆盖
		cfg.Security.SignatureSecretKey = "dev-secret-change-me"
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if alg, exist := os.LookupEnv("ALGORITHM"); !exist {
		cfg.Security.SignatureMethod = "HS256"
	} else {
		cfg.Security.SignatureMethod = alg
	}

	if minutesStr, exist := os.LookupEnv("ACCESS_TOKEN_EXPIRE_MINUTES"); !exist {
		cfg.Security.TokenLifetime = constants.DefaultTokenLifetime
	} else if minutes, err := strconv.Atoi(minutesStr); err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
	} else {
		cfg.Security.TokenLifetime = time.Duration(minutes) * time.Minute
	}

	return cfg, nil
}
