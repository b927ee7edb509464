// Package dto - Test ràng buộc validate của FeedbackCreateInput.
package dto

import (
	"testing"

	"meta_creatives/internal/global"
)

func validInput() FeedbackCreateInput {
	return FeedbackCreateInput{
		ExperimentID: "exp1",
		CreativeID:   "cre1",
		Score:        3,
	}
}

func TestFeedbackCreateInput_HopLe(t *testing.T) {
	for score := 1; score <= 5; score++ {
		input := validInput()
		input.Score = score
		if fields := global.ValidateStruct(&input); fields != nil {
			t.Errorf("score %d phải hợp lệ, nhận được lỗi: %v", score, fields)
		}
	}
}

func TestFeedbackCreateInput_ScoreNgoaiBien(t *testing.T) {
	for _, score := range []int{-1, 6, 100} {
		input := validInput()
		input.Score = score
		fields := global.ValidateStruct(&input)
		if len(fields) != 1 {
			t.Fatalf("score %d phải bị từ chối, nhận được: %v", score, fields)
		}
		if fields[0].Field != "score" {
			t.Errorf("field phải là 'score', nhận được %q", fields[0].Field)
		}
	}
}

func TestFeedbackCreateInput_ThieuScore(t *testing.T) {
	// Score 0 bị coi là thiếu (required trên int)
	input := validInput()
	input.Score = 0
	fields := global.ValidateStruct(&input)
	if len(fields) != 1 {
		t.Fatalf("score 0 phải bị từ chối, nhận được: %v", fields)
	}
	if fields[0].Field != "score" {
		t.Errorf("field phải là 'score', nhận được %q", fields[0].Field)
	}
}

func TestFeedbackCreateInput_ThieuThamChieu(t *testing.T) {
	input := FeedbackCreateInput{Score: 3}
	fields := global.ValidateStruct(&input)
	if len(fields) != 2 {
		t.Fatalf("mong đợi 2 lỗi (experiment_id, creative_id), nhận được %d: %v", len(fields), fields)
	}
}
