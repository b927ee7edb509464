// Package dto - DTO cho domain experiment.
package dto

// ExperimentCreateInput dữ liệu tạo experiment mới.
// Validate theo đúng schema Experiment: tối thiểu 2 creative_ids, status thuộc enum.
type ExperimentCreateInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	CreativeIDs []string `json:"creative_ids" validate:"required,min=2"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=draft running paused completed"`
	Hypothesis  string   `json:"hypothesis,omitempty"`
}

// ExperimentResponse trả về experiment với _id dạng chuỗi hex.
type ExperimentResponse struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	CreativeIDs []string `json:"creative_ids"`
	Status      string   `json:"status"`
	Hypothesis  string   `json:"hypothesis,omitempty"`
	CreatedAt   int64    `json:"createdAt,omitempty"`
	UpdatedAt   int64    `json:"updatedAt,omitempty"`
}
