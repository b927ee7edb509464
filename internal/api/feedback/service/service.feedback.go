// Package feedbacksvc - Service cho domain feedback (collection "feedback").
package feedbacksvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "meta_creatives/internal/api/base/service"
	feedbackdto "meta_creatives/internal/api/feedback/dto"
	feedbackmodels "meta_creatives/internal/api/feedback/models"
	"meta_creatives/internal/global"
	"meta_creatives/internal/logger"
)

// FeedbackService xử lý tạo mới và truy vấn feedback.
type FeedbackService struct {
	*basesvc.BaseServiceMongoImpl[feedbackmodels.Feedback]
}

// NewFeedbackService tạo FeedbackService mới.
// Nếu collection chưa được đăng ký (database chưa cấu hình), service vẫn được tạo
// và các thao tác dữ liệu sẽ trả về lỗi kết nối.
func NewFeedbackService() (*FeedbackService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Feedback)
	if !exist {
		logger.GetAppLogger().Warnf("Collection %s chưa được đăng ký, FeedbackService chạy ở chế độ degraded", global.MongoDB_ColNames.Feedback)
	}
	return &FeedbackService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[feedbackmodels.Feedback](coll),
	}, nil
}

// CreateFeedback tạo feedback mới.
func (s *FeedbackService) CreateFeedback(ctx context.Context, input *feedbackdto.FeedbackCreateInput) (*feedbackmodels.Feedback, error) {
	doc := feedbackmodels.Feedback{
		ExperimentID: input.ExperimentID,
		CreativeID:   input.CreativeID,
		Score:        input.Score,
		Note:         input.Note,
		User:         input.User,
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// buildFeedbackFilter dựng filter equality cho experiment_id/creative_id.
// Filter rỗng khi cả hai tham số đều rỗng; có cả hai thì AND cả hai điều kiện.
func buildFeedbackFilter(experimentID, creativeID string) bson.M {
	filter := bson.M{}
	if experimentID != "" {
		filter["experiment_id"] = experimentID
	}
	if creativeID != "" {
		filter["creative_id"] = creativeID
	}
	return filter
}

// FindFiltered trả về các feedback khớp chính xác mọi filter được cung cấp.
// Không có filter nào thì trả về toàn bộ collection.
func (s *FeedbackService) FindFiltered(ctx context.Context, experimentID, creativeID string) ([]feedbackmodels.Feedback, error) {
	return s.Find(ctx, buildFeedbackFilter(experimentID, creativeID), nil)
}
