// Package router đăng ký các route thuộc domain feedback.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	feedbackhdl "meta_creatives/internal/api/feedback/handler"
)

// Register đăng ký các route feedback lên group /api.
func Register(api fiber.Router) error {
	handler, err := feedbackhdl.NewFeedbackHandler()
	if err != nil {
		return fmt.Errorf("tạo FeedbackHandler: %w", err)
	}

	group := api.Group("/feedback")

	// POST /api/feedback: gửi feedback mới
	group.Post("", handler.HandleCreateFeedback)
	// GET /api/feedback: liệt kê feedback, lọc theo experiment_id/creative_id
	group.Get("", handler.HandleListFeedback)

	return nil
}
