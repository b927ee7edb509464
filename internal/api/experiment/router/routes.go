// Package router đăng ký các route thuộc domain experiment.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	experimenthdl "meta_creatives/internal/api/experiment/handler"
)

// Register đăng ký các route experiment lên group /api.
func Register(api fiber.Router) error {
	handler, err := experimenthdl.NewExperimentHandler()
	if err != nil {
		return fmt.Errorf("tạo ExperimentHandler: %w", err)
	}

	group := api.Group("/experiments")

	// POST /api/experiments: tạo experiment mới
	group.Post("", handler.HandleCreateExperiment)
	// GET /api/experiments: liệt kê toàn bộ experiment
	group.Get("", handler.HandleListExperiments)

	return nil
}
