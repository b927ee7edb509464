// Package experimenthdl - Handler cho domain experiment.
package experimenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "meta_creatives/internal/api/base/handler"
	experimentdto "meta_creatives/internal/api/experiment/dto"
	experimentmodels "meta_creatives/internal/api/experiment/models"
	experimentsvc "meta_creatives/internal/api/experiment/service"
	"meta_creatives/internal/common"
	"meta_creatives/internal/global"
	"meta_creatives/internal/logger"
)

// ExperimentHandler xử lý tạo mới và liệt kê experiment.
type ExperimentHandler struct {
	Service *experimentsvc.ExperimentService
}

// NewExperimentHandler tạo ExperimentHandler mới.
func NewExperimentHandler() (*ExperimentHandler, error) {
	svc, err := experimentsvc.NewExperimentService()
	if err != nil {
		return nil, fmt.Errorf("tạo ExperimentService: %w", err)
	}
	return &ExperimentHandler{Service: svc}, nil
}

// HandleCreateExperiment xử lý POST /api/experiments.
// Request được validate theo schema Experiment đầy đủ (creative_ids >= 2, status thuộc enum);
// tham chiếu creative_ids không kiểm tra tồn tại.
func (h *ExperimentHandler) HandleCreateExperiment(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input experimentdto.ExperimentCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.RespondBodyFormat(c)
		}
		if fields := global.ValidateStruct(&input); fields != nil {
			return basehdl.RespondValidation(c, fields)
		}

		created, err := h.Service.CreateExperiment(c.Context(), &input)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Lỗi tạo experiment")
			return basehdl.RespondError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"id": created.ID.Hex(),
		})
	})
}

// HandleListExperiments xử lý GET /api/experiments.
// Trả về toàn bộ experiment, _id dạng chuỗi, không filter, không phân trang.
func (h *ExperimentHandler) HandleListExperiments(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		docs, err := h.Service.FindAll(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Lỗi truy vấn experiment")
			return basehdl.RespondError(c, err)
		}

		data := make([]experimentdto.ExperimentResponse, 0, len(docs))
		for i := range docs {
			data = append(data, toExperimentResponse(&docs[i]))
		}
		return basehdl.JSONResponse(c, common.StatusOK, data)
	})
}

func toExperimentResponse(m *experimentmodels.Experiment) experimentdto.ExperimentResponse {
	creativeIDs := m.CreativeIDs
	if creativeIDs == nil {
		creativeIDs = []string{}
	}
	return experimentdto.ExperimentResponse{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		CreativeIDs: creativeIDs,
		Status:      m.Status,
		Hypothesis:  m.Hypothesis,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
