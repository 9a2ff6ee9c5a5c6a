package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"gilab-api/app/server/config"
	"gilab-api/app/server/inits"
	"gilab-api/app/server/jwt"
	"gilab-api/app/server/models"

	"github.com/alexedwards/argon2id"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	app *App
	e   *echo.Echo
	db  *gorm.DB
	jwt *jwt.JWT
}

// newTestEnv 基于内存 sqlite 组装一套完整的路由，每个测试独立一份
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// 内存库只允许一个连接，避免每个连接看到不同的数据库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, inits.Migrate(db))

	j, err := jwt.New("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	cfg := &config.Config{}
	app := NewApp(zap.NewNop(), db, j, cfg)

	e := echo.New()
	e.Validator = inits.Validator()
	app.RegisterRoutes(e)

	return &testEnv{app: app, e: e, db: db, jwt: j}
}

// createUser 直接落库，绕过注册接口
func (env *testEnv) createUser(t *testing.T, email string, approved, admin bool) *models.User {
	t.Helper()

	hash, err := argon2id.CreateHash("password123", argon2id.DefaultParams)
	require.NoError(t, err)

	user := &models.User{
		Email:      email,
		Password:   hash,
		FirstName:  "Test",
		LastName:   "User",
		IsApproved: approved,
		IsAdmin:    admin,
	}
	require.NoError(t, env.db.Create(user).Error)

	return user
}

// tokenFor 为已有用户直接签发令牌
func (env *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, _, err := env.jwt.SignUser(user.Email)
	require.NoError(t, err)

	return token
}

// adminToken 建立一个管理员并返回其令牌
func (env *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	return env.tokenFor(t, env.createUser(t, "admin@lab.test", true, true))
}

// request 执行一次请求， body 非空时按 JSON 编码， token 非空时附带 Bearer 头
func (env *testEnv) request(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	return rec
}

// decode 把响应体解析到目标结构
func decode(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
