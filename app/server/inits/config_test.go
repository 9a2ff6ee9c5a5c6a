package inits

import (
	"os"
	"testing"
	"time"

	"gilab-api/app/server/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("DB_CONN", "host=localhost user=test dbname=test")
	t.Setenv("MODE", "")
	t.Setenv("LISTEN", "")
	t.Setenv("PUBLIC_BASE_URL", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("ALGORITHM", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")

	// 清空意味着使用默认值的项需要真正不存在
	for _, key := range []string{"LISTEN", "SECRET_KEY", "ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES"} {
		unsetEnv(t, key)
	}

	cfg, err := Config()
	require.NoError(t, err)

	assert.False(t, cfg.System.IsProd)
	assert.Equal(t, ":8000", cfg.System.Listen)
	assert.Equal(t, "host=localhost user=test dbname=test", cfg.System.DBConnectionString)
	assert.Equal(t, "dev-secret-change-me", cfg.Security.SignatureSecretKey)
	assert.Equal(t, "HS256", cfg.Security.SignatureMethod)
	assert.Equal(t, constants.DefaultTokenLifetime, cfg.Security.TokenLifetime)
}

func TestConfigOverrides(t *testing.T) {
	t.Setenv("MODE", "production")
	t.Setenv("LISTEN", ":9000")
	t.Setenv("DB_CONN", "host=db user=app dbname=app")
	t.Setenv("PUBLIC_BASE_URL", "https://lab.example.edu/")
	t.Setenv("SECRET_KEY", "super-secret")
	t.Setenv("ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "120")

	cfg, err := Config()
	require.NoError(t, err)

	assert.True(t, cfg.System.IsProd)
	assert.Equal(t, ":9000", cfg.System.Listen)
	assert.Equal(t, "https://lab.example.edu", cfg.System.PublicBaseURL) // 末尾斜杠被去除
	assert.Equal(t, "super-secret", cfg.Security.SignatureSecretKey)
	assert.Equal(t, "HS512", cfg.Security.SignatureMethod)
	assert.Equal(t, 120*time.Minute, cfg.Security.TokenLifetime)
}

func TestConfigMissingDBConn(t *testing.T) {
	unsetEnv(t, "DB_CONN")

	_, err := Config()
	assert.Error(t, err)
}

func TestConfigInvalidTokenLifetime(t *testing.T) {
	t.Setenv("DB_CONN", "host=localhost user=test dbname=test")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	_, err := Config()
	assert.Error(t, err)
}

// unsetEnv 在测试结束后恢复原始值
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // 注册恢复逻辑
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}
