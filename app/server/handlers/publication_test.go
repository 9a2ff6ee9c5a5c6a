package handlers

import (
	"net/http"
	"testing"

	"gilab-api/app/server/models"
	"gilab-api/app/server/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) createPublication(t *testing.T, title string, year, order int, authors ...string) *models.Publication {
	t.Helper()

	pub := &models.Publication{
		Title:        title,
		Year:         year,
		Type:         "journal",
		Abstract:     "abstract of " + title,
		DisplayOrder: order,
	}
	for idx, name := range authors {
		pub.Authors = append(pub.Authors, models.Author{Name: name, DisplayOrder: idx})
	}
	require.NoError(t, env.db.Create(pub).Error)

	return pub
}

func TestPublicationList(t *testing.T) {
	env := newTestEnv(t)
	env.createPublication(t, "second", 2023, 2, "Alice")
	env.createPublication(t, "first", 2023, 1, "Bob", "Carol")
	env.createPublication(t, "older", 2020, 3)

	rec := env.request(t, http.MethodGet, "/publications", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res []types.PublicationResponse
	decode(t, rec, &res)
	require.Len(t, res, 3)

	// display_order 升序
	assert.Equal(t, "first", res[0].Title)
	assert.Equal(t, "second", res[1].Title)
	assert.Equal(t, "older", res[2].Title)

	// 作者按署名顺序内联返回
	require.Len(t, res[0].Authors, 2)
	assert.Equal(t, "Bob", res[0].Authors[0].Name)
	assert.Equal(t, "Carol", res[0].Authors[1].Name)
}

func TestPublicationListYearFilter(t *testing.T) {
	env := newTestEnv(t)
	env.createPublication(t, "in-year", 2023, 1)
	env.createPublication(t, "out-of-year", 2020, 1)

	rec := env.request(t, http.MethodGet, "/publications?year=2023", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res []types.PublicationResponse
	decode(t, rec, &res)
	require.Len(t, res, 1)
	assert.Equal(t, "in-year", res[0].Title)

	// 年份参数必须是数字
	rec = env.request(t, http.MethodGet, "/publications?year=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicationRecentList(t *testing.T) {
	env := newTestEnv(t)
	env.createPublication(t, "old-a", 2019, 1)
	env.createPublication(t, "new-b", 2024, 2)
	env.createPublication(t, "new-a", 2024, 1)
	env.createPublication(t, "mid", 2022, 1)

	rec := env.request(t, http.MethodGet, "/publications/recent?limit=3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res []types.PublicationResponse
	decode(t, rec, &res)
	require.Len(t, res, 3)

	// 年份降序，同一年内按 display_order 升序
	assert.Equal(t, "new-a", res[0].Title)
	assert.Equal(t, "new-b", res[1].Title)
	assert.Equal(t, "mid", res[2].Title)

	rec = env.request(t, http.MethodGet, "/publications/recent?limit=0", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicationCreate(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.request(t, http.MethodPost, "/publications", token, map[string]any{
		"publication_data": map[string]any{
			"title":    "Deep Lab Research",
			"year":     2024,
			"type":     "conference",
			"abstract": "something important",
			"journal":  "Nature",
		},
		"authors_data": []map[string]any{
			{"name": "Alice"},
			{"name": "Bob", "homepage": "https://bob.example"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var res types.PublicationResponse
	decode(t, rec, &res)
	assert.Equal(t, "Deep Lab Research", res.Title)
	require.Len(t, res.Authors, 2)

	// 不传 order 时按数组下标署名
	assert.Equal(t, 0, res.Authors[0].Order)
	assert.Equal(t, 1, res.Authors[1].Order)
	assert.Equal(t, "https://bob.example", res.Authors[1].Homepage)

	// 记录创建者
	var admin models.User
	require.NoError(t, env.db.First(&admin, "email = ?", "admin@lab.test").Error)
	assert.Equal(t, admin.ID, res.AuthorID)
}

func TestPublicationCreateRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "plain@lab.test", true, false)

	body := map[string]any{
		"publication_data": map[string]any{
			"title": "t", "year": 2024, "type": "journal", "abstract": "a",
		},
	}

	rec := env.request(t, http.MethodPost, "/publications", env.tokenFor(t, user), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.request(t, http.MethodPost, "/publications", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPublicationUpdateKeepsAuthors(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	pub := env.createPublication(t, "before", 2023, 1, "Alice", "Bob")

	// 不带作者字段的部分更新：作者列表保持不动
	rec := env.request(t, http.MethodPut, "/publications/"+pub.ID, token, map[string]any{
		"title": "after",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.PublicationResponse
	decode(t, rec, &res)
	assert.Equal(t, "after", res.Title)
	assert.Equal(t, 2023, res.Year) // 缺省字段保持原值
	require.Len(t, res.Authors, 2)
	assert.Equal(t, "Alice", res.Authors[0].Name)
}

func TestPublicationUpdateReplacesAuthors(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	pub := env.createPublication(t, "paper", 2023, 1, "Alice", "Bob")

	// authors_data 非空：整体替换
	rec := env.request(t, http.MethodPut, "/publications/"+pub.ID, token, map[string]any{
		"authors_data": []map[string]any{
			{"name": "Mallory"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.PublicationResponse
	decode(t, rec, &res)
	require.Len(t, res.Authors, 1)
	assert.Equal(t, "Mallory", res.Authors[0].Name)

	// 旧作者记录被真正删除
	var count int64
	require.NoError(t, env.db.Model(&models.Author{}).Where("publication_id = ?", pub.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// 空数组也算替换，清空作者
	rec = env.request(t, http.MethodPut, "/publications/"+pub.ID, token, map[string]any{
		"authors": []map[string]any{},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &res)
	assert.Empty(t, res.Authors)
}

func TestPublicationUpdateNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.request(t, http.MethodPut, "/publications/no-such-id", token, map[string]any{
		"title": "whatever",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicationSetOrder(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	pub := env.createPublication(t, "paper", 2023, 1)

	rec := env.request(t, http.MethodPut, "/publications/"+pub.ID+"/order?order=42", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.Publication
	require.NoError(t, env.db.First(&stored, "id = ?", pub.ID).Error)
	assert.Equal(t, 42, stored.DisplayOrder)

	// order 参数必须是数字
	rec = env.request(t, http.MethodPut, "/publications/"+pub.ID+"/order?order=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicationMove(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	_ = env.createPublication(t, "a", 2023, 1)
	b := env.createPublication(t, "b", 2023, 2)
	c := env.createPublication(t, "c", 2023, 3)

	// b 上移：与 a 交换
	rec := env.request(t, http.MethodPost, "/publications/"+b.ID+"/move-up", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.MoveResult
	decode(t, rec, &res)
	assert.True(t, res.Moved)

	orders := map[string]int{}
	var pubs []models.Publication
	require.NoError(t, env.db.Find(&pubs).Error)
	for _, p := range pubs {
		orders[p.Title] = p.DisplayOrder
	}
	assert.Equal(t, 2, orders["a"])
	assert.Equal(t, 1, orders["b"])
	assert.Equal(t, 3, orders["c"])

	// b 已在最顶：moved = false ，但依旧是 200
	rec = env.request(t, http.MethodPost, "/publications/"+b.ID+"/move-up", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &res)
	assert.False(t, res.Moved)

	// c 已在最底
	rec = env.request(t, http.MethodPost, "/publications/"+c.ID+"/move-down", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &res)
	assert.False(t, res.Moved)
}

func TestPublicationMoveStaysInYear(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	env.createPublication(t, "other-year", 2020, 1)
	only := env.createPublication(t, "only-2023", 2023, 2)

	// 2023 年只有一篇：哪个方向都动不了，也绝不会和 2020 年的交换
	for _, path := range []string{"/move-up", "/move-down"} {
		rec := env.request(t, http.MethodPost, "/publications/"+only.ID+path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res types.MoveResult
		decode(t, rec, &res)
		assert.False(t, res.Moved)
	}

	var stored models.Publication
	require.NoError(t, env.db.First(&stored, "title = ?", "other-year").Error)
	assert.Equal(t, 1, stored.DisplayOrder)
}

func TestPublicationMoveNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.request(t, http.MethodPost, "/publications/no-such-id/move-up", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicationDelete(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	pub := env.createPublication(t, "paper", 2023, 1, "Alice", "Bob")

	rec := env.request(t, http.MethodDelete, "/publications/"+pub.ID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// 论文和作者一并删除
	var count int64
	require.NoError(t, env.db.Model(&models.Publication{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, env.db.Model(&models.Author{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	rec = env.request(t, http.MethodDelete, "/publications/"+pub.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
