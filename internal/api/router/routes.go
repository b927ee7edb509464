// Package router thiết lập toàn bộ route cho ứng dụng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "meta_creatives/internal/api/base/handler"
	creativerouter "meta_creatives/internal/api/creative/router"
	experimentrouter "meta_creatives/internal/api/experiment/router"
	feedbackrouter "meta_creatives/internal/api/feedback/router"
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
	}
}

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// System routes (/, /test) nằm ở root, các domain route nằm dưới /api.
func SetupRoutes(app *fiber.App) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("tạo SystemHandler: %w", err)
	}

	// System routes
	app.Get("/", systemHandler.HandleRoot)
	app.Get("/test", systemHandler.HandleTest)

	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)

	// Domain routes
	if err := creativerouter.Register(api); err != nil {
		return fmt.Errorf("đăng ký route creative: %w", err)
	}
	if err := experimentrouter.Register(api); err != nil {
		return fmt.Errorf("đăng ký route experiment: %w", err)
	}
	if err := feedbackrouter.Register(api); err != nil {
		return fmt.Errorf("đăng ký route feedback: %w", err)
	}

	return nil
}
