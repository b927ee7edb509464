package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"meta_creatives/internal/common"
	"meta_creatives/internal/global"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
//
// Parameters:
// - c: Fiber context
// - handler: Function xử lý chính của handler
func SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			// Trả về lỗi cho client
			JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"detail": fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
			})
		}
	}()
	return handler()
}

// RespondError chuẩn hóa lỗi trả về cho client theo contract {detail}.
// Lỗi *common.Error dùng StatusCode của chính nó, lỗi khác trả về 500.
func RespondError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"detail": customErr.Message,
		})
	}
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"detail": err.Error(),
	})
}

// RespondValidation trả về 422 với danh sách lỗi theo từng field,
// đủ để client xác định field nào sai và vì sao
func RespondValidation(c fiber.Ctx, fields []global.FieldError) error {
	return JSONResponse(c, common.StatusUnprocessableEntity, fiber.Map{
		"detail": fields,
	})
}

// RespondBodyFormat trả về 422 khi body không phải JSON hợp lệ
func RespondBodyFormat(c fiber.Ctx) error {
	return RespondValidation(c, []global.FieldError{
		{Field: "body", Reason: "dữ liệu gửi lên không đúng định dạng JSON"},
	})
}
