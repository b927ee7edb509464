// Package global - Test ValidateStruct trả về lỗi theo json tag của field.
package global

import (
	"testing"
)

type sampleInput struct {
	Name  string   `json:"name" validate:"required"`
	Kind  string   `json:"kind" validate:"omitempty,oneof=image video"`
	Items []string `json:"items" validate:"omitempty,min=2"`
	Score int      `json:"score" validate:"omitempty,min=1,max=5"`
}

func TestValidateStruct_HopLe(t *testing.T) {
	input := sampleInput{Name: "test", Kind: "image", Items: []string{"a", "b"}, Score: 3}
	if fields := ValidateStruct(&input); fields != nil {
		t.Errorf("input hợp lệ nhưng vẫn trả về lỗi: %v", fields)
	}
}

func TestValidateStruct_ThieuTruongBatBuoc(t *testing.T) {
	input := sampleInput{}
	fields := ValidateStruct(&input)
	if len(fields) != 1 {
		t.Fatalf("mong đợi 1 lỗi, nhận được %d: %v", len(fields), fields)
	}
	if fields[0].Field != "name" {
		t.Errorf("field phải lấy theo json tag 'name', nhận được %q", fields[0].Field)
	}
	if fields[0].Reason != "trường bắt buộc" {
		t.Errorf("reason không đúng: %q", fields[0].Reason)
	}
}

func TestValidateStruct_OneofKhongHopLe(t *testing.T) {
	input := sampleInput{Name: "test", Kind: "audio"}
	fields := ValidateStruct(&input)
	if len(fields) != 1 {
		t.Fatalf("mong đợi 1 lỗi, nhận được %d: %v", len(fields), fields)
	}
	if fields[0].Field != "kind" {
		t.Errorf("field phải là 'kind', nhận được %q", fields[0].Field)
	}
}

func TestValidateStruct_MinTrenSlice(t *testing.T) {
	input := sampleInput{Name: "test", Items: []string{"a"}}
	fields := ValidateStruct(&input)
	if len(fields) != 1 {
		t.Fatalf("mong đợi 1 lỗi, nhận được %d: %v", len(fields), fields)
	}
	if fields[0].Field != "items" {
		t.Errorf("field phải là 'items', nhận được %q", fields[0].Field)
	}
	if fields[0].Reason != "cần tối thiểu 2 phần tử" {
		t.Errorf("reason cho min trên slice không đúng: %q", fields[0].Reason)
	}
}

func TestValidateStruct_MaxTrenSo(t *testing.T) {
	input := sampleInput{Name: "test", Score: 6}
	fields := ValidateStruct(&input)
	if len(fields) != 1 {
		t.Fatalf("mong đợi 1 lỗi, nhận được %d: %v", len(fields), fields)
	}
	if fields[0].Reason != "giá trị lớn nhất là 5" {
		t.Errorf("reason cho max trên số không đúng: %q", fields[0].Reason)
	}
}
