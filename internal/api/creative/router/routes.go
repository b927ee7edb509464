// Package router đăng ký các route thuộc domain creative.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	creativehdl "meta_creatives/internal/api/creative/handler"
)

// Register đăng ký các route creative lên group /api.
func Register(api fiber.Router) error {
	handler, err := creativehdl.NewCreativeHandler()
	if err != nil {
		return fmt.Errorf("tạo CreativeHandler: %w", err)
	}

	group := api.Group("/creatives")

	// POST /api/creatives: tạo creative mới
	group.Post("", handler.HandleCreateCreative)
	// GET /api/creatives: liệt kê toàn bộ creative
	group.Get("", handler.HandleListCreatives)

	return nil
}
