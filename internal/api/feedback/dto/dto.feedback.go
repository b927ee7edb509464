// Package dto - DTO cho domain feedback.
package dto

// FeedbackCreateInput dữ liệu tạo feedback mới.
// Validate theo đúng schema Feedback: score bắt buộc trong [1,5].
type FeedbackCreateInput struct {
	ExperimentID string `json:"experiment_id" validate:"required"`
	CreativeID   string `json:"creative_id" validate:"required"`
	Score        int    `json:"score" validate:"required,min=1,max=5"`
	Note         string `json:"note,omitempty"`
	User         string `json:"user,omitempty"`
}

// FeedbackResponse trả về feedback với _id dạng chuỗi hex.
type FeedbackResponse struct {
	ID           string `json:"_id"`
	ExperimentID string `json:"experiment_id"`
	CreativeID   string `json:"creative_id"`
	Score        int    `json:"score"`
	Note         string `json:"note,omitempty"`
	User         string `json:"user,omitempty"`
	CreatedAt    int64  `json:"createdAt,omitempty"`
	UpdatedAt    int64  `json:"updatedAt,omitempty"`
}
