// Package creativehdl - Handler cho domain creative.
package creativehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "meta_creatives/internal/api/base/handler"
	creativedto "meta_creatives/internal/api/creative/dto"
	creativemodels "meta_creatives/internal/api/creative/models"
	creativesvc "meta_creatives/internal/api/creative/service"
	"meta_creatives/internal/common"
	"meta_creatives/internal/global"
	"meta_creatives/internal/logger"
)

// CreativeHandler xử lý tạo mới và liệt kê creative.
type CreativeHandler struct {
	Service *creativesvc.CreativeService
}

// NewCreativeHandler tạo CreativeHandler mới.
func NewCreativeHandler() (*CreativeHandler, error) {
	svc, err := creativesvc.NewCreativeService()
	if err != nil {
		return nil, fmt.Errorf("tạo CreativeService: %w", err)
	}
	return &CreativeHandler{Service: svc}, nil
}

// HandleCreateCreative xử lý POST /api/creatives.
// Validate payload theo schema Creative trước khi ghi; thành công trả về {id}.
func (h *CreativeHandler) HandleCreateCreative(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input creativedto.CreativeCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.RespondBodyFormat(c)
		}
		if fields := global.ValidateStruct(&input); fields != nil {
			return basehdl.RespondValidation(c, fields)
		}

		created, err := h.Service.CreateCreative(c.Context(), &input)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Lỗi tạo creative")
			return basehdl.RespondError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"id": created.ID.Hex(),
		})
	})
}

// HandleListCreatives xử lý GET /api/creatives.
// Trả về toàn bộ creative, _id dạng chuỗi, không filter, không phân trang.
func (h *CreativeHandler) HandleListCreatives(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		docs, err := h.Service.FindAll(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Lỗi truy vấn creative")
			return basehdl.RespondError(c, err)
		}

		data := make([]creativedto.CreativeResponse, 0, len(docs))
		for i := range docs {
			data = append(data, toCreativeResponse(&docs[i]))
		}
		return basehdl.JSONResponse(c, common.StatusOK, data)
	})
}

func toCreativeResponse(m *creativemodels.Creative) creativedto.CreativeResponse {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return creativedto.CreativeResponse{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		MediaURL:    m.MediaURL,
		Headline:    m.Headline,
		PrimaryText: m.PrimaryText,
		CTA:         m.CTA,
		Platform:    m.Platform,
		Format:      m.Format,
		Tags:        tags,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
