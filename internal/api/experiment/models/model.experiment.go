// Package models - Experiment thuộc domain experiment (collection "experiment").
// Một experiment là phép so sánh A/B giữa nhiều creative, có trạng thái lifecycle.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái lifecycle của experiment
const (
	StatusDraft     = "draft" // Mặc định
	StatusRunning   = "running"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

// Experiment lưu một A/B test (collection "experiment").
// CreativeIDs tham chiếu collection "creative" theo quy ước chuỗi id,
// không enforce tồn tại ở tầng database.
type Experiment struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	CreativeIDs []string `json:"creative_ids" bson:"creative_ids"`
	Status      string   `json:"status" bson:"status"`
	Hypothesis  string   `json:"hypothesis,omitempty" bson:"hypothesis,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
