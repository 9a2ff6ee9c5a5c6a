package config

import "time"

type Config struct {
	System struct {
		IsProd             bool   // 是否为生产环境
		Listen             string // 监听地址
		DBConnectionString string // Postgres 数据库的连接字符串
		PublicBaseURL      string // 上传文件对外 URL 的最优先来源，为空时回退到代理头 / 请求地址
	}
	Security struct {
		SignatureSecretKey string        // 签名密钥，用于签发 JWT ，更新会立刻使所有已签发的令牌失效
		SignatureMethod    string        // JWT 签名算法，进程内固定，默认 HS256
		TokenLifetime      time.Duration // 令牌有效期，默认 30 分钟
	}
}
