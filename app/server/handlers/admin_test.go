package handlers

import (
	"net/http"
	"testing"

	"gilab-api/app/server/models"
	"gilab-api/app/server/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingUserList(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	env.createUser(t, "first@lab.test", false, false)
	env.createUser(t, "second@lab.test", false, false)
	env.createUser(t, "approved@lab.test", true, false)

	rec := env.request(t, http.MethodGet, "/admin/pending-users", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res []types.UserResponse
	decode(t, rec, &res)

	// 只包含未审批的，按注册时间先后
	require.Len(t, res, 2)
	assert.Equal(t, "first@lab.test", res[0].Email)
	assert.Equal(t, "second@lab.test", res[1].Email)
}

func TestPendingUserListRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "plain@lab.test", true, false)
	token := env.tokenFor(t, user)

	rec := env.request(t, http.MethodGet, "/admin/pending-users", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.request(t, http.MethodGet, "/admin/pending-users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApproveUser(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	pending := env.createUser(t, "pending@lab.test", false, false)

	rec := env.request(t, http.MethodPost, "/admin/approve-user/"+pending.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.User
	require.NoError(t, env.db.First(&stored, "id = ?", pending.ID).Error)
	assert.True(t, stored.IsApproved)
	assert.False(t, stored.IsAdmin) // 审批不授予管理员

	// 审批后即可登录
	login := env.request(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "pending@lab.test",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestApproveUserNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.request(t, http.MethodPost, "/admin/approve-user/no-such-id", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApproveUserIdempotent(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	user := env.createUser(t, "done@lab.test", true, false)

	// 已审批的再次审批依旧成功
	rec := env.request(t, http.MethodPost, "/admin/approve-user/"+user.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
