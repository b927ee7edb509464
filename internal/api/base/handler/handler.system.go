package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"meta_creatives/internal/common"
	"meta_creatives/internal/global"
)

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct{}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{}, nil
}

// HandleRoot xác nhận service đang chạy
// @Router / [get]
func (h *SystemHandler) HandleRoot(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"message": "Meta Creatives Testing Tools API is running",
	})
}

// HandleTest báo cáo best-effort trạng thái kết nối database.
// Endpoint này luôn trả về HTTP 200: trạng thái (kể cả lỗi) nằm trong body,
// mọi lỗi khi probe database đều được bắt lại, không bao giờ propagate.
// @Router /test [get]
func (h *SystemHandler) HandleTest(c fiber.Ctx) error {
	cfg := global.MongoDB_ServerConfig

	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if global.MongoDB_Session == nil || cfg == nil {
		return JSONResponse(c, common.StatusOK, response)
	}

	response["database"] = "✅ Available"
	if cfg.DatabaseURL != "" {
		response["database_url"] = "✅ Set"
	} else {
		response["database_url"] = "❌ Not Set"
	}
	if cfg.DatabaseName != "" {
		response["database_name"] = cfg.DatabaseName
	} else {
		response["database_name"] = "❌ Not Set"
		// Không có tên database thì không probe được collection nào
		return JSONResponse(c, common.StatusOK, response)
	}

	// Probe danh sách collection với timeout ngắn
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	names, err := global.MongoDB_Session.Database(cfg.DatabaseName).ListCollectionNames(ctx, bson.D{})
	if err != nil {
		response["database"] = "⚠️  Connected but Error: " + truncateError(err, 50)
		return JSONResponse(c, common.StatusOK, response)
	}

	if len(names) > 10 {
		names = names[:10]
	}
	response["collections"] = names
	response["database"] = "✅ Connected & Working"
	response["connection_status"] = "Connected"

	return JSONResponse(c, common.StatusOK, response)
}

// truncateError cắt message lỗi còn tối đa n ký tự
func truncateError(err error, n int) string {
	msg := []rune(err.Error())
	if len(msg) > n {
		msg = msg[:n]
	}
	return string(msg)
}
