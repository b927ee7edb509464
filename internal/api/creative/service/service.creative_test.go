// Package creativesvc - Test buildCreative áp đúng các giá trị mặc định của schema.
package creativesvc

import (
	"testing"

	creativedto "meta_creatives/internal/api/creative/dto"
	creativemodels "meta_creatives/internal/api/creative/models"
)

func TestBuildCreative_ApDefaults(t *testing.T) {
	input := &creativedto.CreativeCreateInput{
		Name:     "Summer Sale",
		MediaURL: "https://cdn.example.com/banner.jpg",
	}
	doc := buildCreative(input)

	if doc.Platform != creativemodels.PlatformMeta {
		t.Errorf("platform mặc định phải là %q, nhận được %q", creativemodels.PlatformMeta, doc.Platform)
	}
	if doc.Format != creativemodels.FormatImage {
		t.Errorf("format mặc định phải là %q, nhận được %q", creativemodels.FormatImage, doc.Format)
	}
	if doc.Tags == nil {
		t.Error("tags phải là mảng rỗng, không được nil")
	}
	if len(doc.Tags) != 0 {
		t.Errorf("tags mặc định phải rỗng, nhận được %v", doc.Tags)
	}
}

func TestBuildCreative_GiuGiaTriNguoiDung(t *testing.T) {
	input := &creativedto.CreativeCreateInput{
		Name:     "Video Ad",
		MediaURL: "https://cdn.example.com/clip.mp4",
		Platform: creativemodels.PlatformInstagram,
		Format:   creativemodels.FormatVideo,
		Tags:     []string{"summer", "sale"},
	}
	doc := buildCreative(input)

	if doc.Platform != creativemodels.PlatformInstagram {
		t.Errorf("platform người dùng chọn bị ghi đè: %q", doc.Platform)
	}
	if doc.Format != creativemodels.FormatVideo {
		t.Errorf("format người dùng chọn bị ghi đè: %q", doc.Format)
	}
	if len(doc.Tags) != 2 {
		t.Errorf("tags người dùng gửi bị mất: %v", doc.Tags)
	}
}
