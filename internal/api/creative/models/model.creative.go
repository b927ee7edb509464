// Package models - Creative thuộc domain creative (collection "creative").
// Một creative là tài sản quảng cáo (ảnh/video/carousel/story) kèm metadata hiển thị.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các giá trị hợp lệ cho platform và format
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformMeta      = "meta" // Mặc định

	FormatImage    = "image" // Mặc định
	FormatVideo    = "video"
	FormatCarousel = "carousel"
	FormatStory    = "story"
)

// Creative lưu một creative quảng cáo (collection "creative").
// Document bất biến sau khi tạo: API không có update/delete.
type Creative struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string   `json:"name" bson:"name"`
	MediaURL    string   `json:"media_url" bson:"media_url"`
	Headline    string   `json:"headline,omitempty" bson:"headline,omitempty"`
	PrimaryText string   `json:"primary_text,omitempty" bson:"primary_text,omitempty"`
	CTA         string   `json:"cta,omitempty" bson:"cta,omitempty"`
	Platform    string   `json:"platform" bson:"platform"`
	Format      string   `json:"format" bson:"format"`
	Tags        []string `json:"tags" bson:"tags"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
