// Package dto - DTO cho domain creative.
package dto

// CreativeCreateInput dữ liệu tạo creative mới.
// platform/format/tags để trống sẽ được service áp default (meta/image/mảng rỗng).
type CreativeCreateInput struct {
	Name        string   `json:"name" validate:"required"`
	MediaURL    string   `json:"media_url" validate:"required"`
	Headline    string   `json:"headline,omitempty"`
	PrimaryText string   `json:"primary_text,omitempty"`
	CTA         string   `json:"cta,omitempty"`
	Platform    string   `json:"platform,omitempty" validate:"omitempty,oneof=facebook instagram meta"`
	Format      string   `json:"format,omitempty" validate:"omitempty,oneof=image video carousel story"`
	Tags        []string `json:"tags,omitempty"`
}

// CreativeResponse trả về creative với _id dạng chuỗi hex.
type CreativeResponse struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	MediaURL    string   `json:"media_url"`
	Headline    string   `json:"headline,omitempty"`
	PrimaryText string   `json:"primary_text,omitempty"`
	CTA         string   `json:"cta,omitempty"`
	Platform    string   `json:"platform"`
	Format      string   `json:"format"`
	Tags        []string `json:"tags"`
	CreatedAt   int64    `json:"createdAt,omitempty"`
	UpdatedAt   int64    `json:"updatedAt,omitempty"`
}
