// Package feedbackhdl - Handler cho domain feedback.
package feedbackhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "meta_creatives/internal/api/base/handler"
	feedbackdto "meta_creatives/internal/api/feedback/dto"
	feedbackmodels "meta_creatives/internal/api/feedback/models"
	feedbacksvc "meta_creatives/internal/api/feedback/service"
	"meta_creatives/internal/common"
	"meta_creatives/internal/global"
	"meta_creatives/internal/logger"
)

// FeedbackHandler xử lý tạo mới và truy vấn feedback.
type FeedbackHandler struct {
	Service *feedbacksvc.FeedbackService
}

// NewFeedbackHandler tạo FeedbackHandler mới.
func NewFeedbackHandler() (*FeedbackHandler, error) {
	svc, err := feedbacksvc.NewFeedbackService()
	if err != nil {
		return nil, fmt.Errorf("tạo FeedbackService: %w", err)
	}
	return &FeedbackHandler{Service: svc}, nil
}

// HandleCreateFeedback xử lý POST /api/feedback.
// Score phải nằm trong [1,5]; experiment_id/creative_id không kiểm tra tồn tại.
func (h *FeedbackHandler) HandleCreateFeedback(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input feedbackdto.FeedbackCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.RespondBodyFormat(c)
		}
		if fields := global.ValidateStruct(&input); fields != nil {
			return basehdl.RespondValidation(c, fields)
		}

		created, err := h.Service.CreateFeedback(c.Context(), &input)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Lỗi tạo feedback")
			return basehdl.RespondError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"id": created.ID.Hex(),
		})
	})
}

// HandleListFeedback xử lý GET /api/feedback.
// Hỗ trợ query param experiment_id và creative_id, lọc equality, AND khi có cả hai.
func (h *FeedbackHandler) HandleListFeedback(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		experimentID := c.Query("experiment_id")
		creativeID := c.Query("creative_id")

		docs, err := h.Service.FindFiltered(c.Context(), experimentID, creativeID)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Lỗi truy vấn feedback")
			return basehdl.RespondError(c, err)
		}

		data := make([]feedbackdto.FeedbackResponse, 0, len(docs))
		for i := range docs {
			data = append(data, toFeedbackResponse(&docs[i]))
		}
		return basehdl.JSONResponse(c, common.StatusOK, data)
	})
}

func toFeedbackResponse(m *feedbackmodels.Feedback) feedbackdto.FeedbackResponse {
	return feedbackdto.FeedbackResponse{
		ID:           m.ID.Hex(),
		ExperimentID: m.ExperimentID,
		CreativeID:   m.CreativeID,
		Score:        m.Score,
		Note:         m.Note,
		User:         m.User,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
