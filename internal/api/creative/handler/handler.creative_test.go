// Package creativehdl - Test contract HTTP của route creative khi chưa có database.
package creativehdl

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	creativemodels "meta_creatives/internal/api/creative/models"
)

func newCreativeApp(t *testing.T) *fiber.App {
	t.Helper()
	handler, err := NewCreativeHandler()
	require.NoError(t, err)

	app := fiber.New()
	api := app.Group("/api")
	group := api.Group("/creatives")
	group.Post("", handler.HandleCreateCreative)
	group.Get("", handler.HandleListCreatives)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestHandleCreateCreative_ThieuTruongBatBuoc(t *testing.T) {
	app := newCreativeApp(t)

	status, payload := postJSON(t, app, "/api/creatives", `{"media_url":"https://cdn.example.com/a.jpg"}`)
	assert.Equal(t, 422, status)

	detail, ok := payload["detail"].([]interface{})
	require.True(t, ok, "detail phải là danh sách lỗi theo field, nhận được: %v", payload)
	require.Len(t, detail, 1)

	fieldErr, ok := detail[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "name", fieldErr["field"])
}

func TestHandleCreateCreative_BodyKhongPhaiJSON(t *testing.T) {
	app := newCreativeApp(t)

	status, payload := postJSON(t, app, "/api/creatives", `không phải json`)
	assert.Equal(t, 422, status)

	detail, ok := payload["detail"].([]interface{})
	require.True(t, ok, "detail phải là danh sách lỗi, nhận được: %v", payload)
	fieldErr, ok := detail[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "body", fieldErr["field"])
}

func TestHandleCreateCreative_KhongCoDatabase(t *testing.T) {
	// Input hợp lệ nhưng collection chưa được đăng ký thì phải trả 500 với {detail}
	app := newCreativeApp(t)

	status, payload := postJSON(t, app, "/api/creatives", `{"name":"Summer Sale","media_url":"https://cdn.example.com/a.jpg"}`)
	assert.Equal(t, 500, status)
	assert.NotEmpty(t, payload["detail"])
}

func TestToCreativeResponse_TagsNilThanhMangRong(t *testing.T) {
	// Document cũ không có field tags thì response vẫn phải serialize thành []
	m := creativemodels.Creative{
		Name:     "Legacy",
		MediaURL: "https://cdn.example.com/a.jpg",
		Platform: creativemodels.PlatformMeta,
		Format:   creativemodels.FormatImage,
	}
	resp := toCreativeResponse(&m)
	require.NotNil(t, resp.Tags)
	assert.Empty(t, resp.Tags)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tags":[]`)
}

func TestHandleListCreatives_KhongCoDatabase(t *testing.T) {
	app := newCreativeApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/creatives", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 500, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.NotEmpty(t, payload["detail"])
}
