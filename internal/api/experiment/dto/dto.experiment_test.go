// Package dto - Test ràng buộc validate của ExperimentCreateInput.
package dto

import (
	"testing"

	"meta_creatives/internal/global"
)

func TestExperimentCreateInput_CanToiThieu2Creative(t *testing.T) {
	input := ExperimentCreateInput{
		Name:        "Test",
		CreativeIDs: []string{"id1"},
	}
	fields := global.ValidateStruct(&input)
	if len(fields) != 1 {
		t.Fatalf("mong đợi 1 lỗi, nhận được %d: %v", len(fields), fields)
	}
	if fields[0].Field != "creative_ids" {
		t.Errorf("field phải là 'creative_ids', nhận được %q", fields[0].Field)
	}
}

func TestExperimentCreateInput_StatusNgoaiEnum(t *testing.T) {
	input := ExperimentCreateInput{
		Name:        "Test",
		CreativeIDs: []string{"id1", "id2"},
		Status:      "archived",
	}
	fields := global.ValidateStruct(&input)
	if len(fields) != 1 {
		t.Fatalf("mong đợi 1 lỗi, nhận được %d: %v", len(fields), fields)
	}
	if fields[0].Field != "status" {
		t.Errorf("field phải là 'status', nhận được %q", fields[0].Field)
	}
}

func TestExperimentCreateInput_HopLe(t *testing.T) {
	input := ExperimentCreateInput{
		Name:        "Headline A/B",
		CreativeIDs: []string{"id1", "id2"},
		Status:      "running",
	}
	if fields := global.ValidateStruct(&input); fields != nil {
		t.Errorf("input hợp lệ nhưng vẫn trả về lỗi: %v", fields)
	}
}

func TestExperimentCreateInput_PhanTuRongLaHopLe(t *testing.T) {
	// Ràng buộc chỉ áp trên số lượng phần tử, không áp trên nội dung từng phần tử
	input := ExperimentCreateInput{
		Name:        "Test",
		CreativeIDs: []string{"id1", ""},
	}
	if fields := global.ValidateStruct(&input); fields != nil {
		t.Errorf("phần tử rỗng trong creative_ids phải hợp lệ: %v", fields)
	}
}

func TestExperimentCreateInput_StatusRongLaHopLe(t *testing.T) {
	// Status rỗng sẽ được service áp default draft
	input := ExperimentCreateInput{
		Name:        "Test",
		CreativeIDs: []string{"id1", "id2"},
	}
	if fields := global.ValidateStruct(&input); fields != nil {
		t.Errorf("status rỗng phải hợp lệ: %v", fields)
	}
}
