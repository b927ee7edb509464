// Package basehdl - Test system routes khi chưa có kết nối database.
package basehdl

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSystemApp(t *testing.T) *fiber.App {
	t.Helper()
	handler, err := NewSystemHandler()
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", handler.HandleRoot)
	app.Get("/test", handler.HandleTest)
	return app
}

func TestHandleRoot(t *testing.T) {
	app := newSystemApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Meta Creatives Testing Tools API is running", payload["message"])
}

func TestHandleTest_KhongCoDatabase(t *testing.T) {
	// Không có session và config thì /test vẫn trả 200 với trạng thái degraded trong body
	app := newSystemApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "✅ Running", payload["backend"])
	assert.Equal(t, "❌ Not Available", payload["database"])
	assert.Equal(t, "Not Connected", payload["connection_status"])
	assert.Empty(t, payload["collections"])
}
