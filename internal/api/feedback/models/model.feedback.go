// Package models - Feedback thuộc domain feedback (collection "feedback").
// Một feedback là điểm 1-5 kèm ghi chú, gắn với một experiment và một creative.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Giới hạn điểm hợp lệ
const (
	ScoreMin = 1
	ScoreMax = 5
)

// Feedback lưu một đánh giá creative trong experiment (collection "feedback").
// ExperimentID/CreativeID tham chiếu theo quy ước chuỗi id, không enforce tồn tại.
type Feedback struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ExperimentID string `json:"experiment_id" bson:"experiment_id"`
	CreativeID   string `json:"creative_id" bson:"creative_id"`
	Score        int    `json:"score" bson:"score"`
	Note         string `json:"note,omitempty" bson:"note,omitempty"`
	User         string `json:"user,omitempty" bson:"user,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
