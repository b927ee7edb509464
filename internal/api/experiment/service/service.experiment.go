// Package experimentsvc - Service cho domain experiment (collection "experiment").
package experimentsvc

import (
	"context"

	basesvc "meta_creatives/internal/api/base/service"
	experimentdto "meta_creatives/internal/api/experiment/dto"
	experimentmodels "meta_creatives/internal/api/experiment/models"
	"meta_creatives/internal/global"
	"meta_creatives/internal/logger"
)

// ExperimentService xử lý tạo mới và truy vấn experiment.
type ExperimentService struct {
	*basesvc.BaseServiceMongoImpl[experimentmodels.Experiment]
}

// NewExperimentService tạo ExperimentService mới.
// Nếu collection chưa được đăng ký (database chưa cấu hình), service vẫn được tạo
// và các thao tác dữ liệu sẽ trả về lỗi kết nối.
func NewExperimentService() (*ExperimentService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Experiments)
	if !exist {
		logger.GetAppLogger().Warnf("Collection %s chưa được đăng ký, ExperimentService chạy ở chế độ degraded", global.MongoDB_ColNames.Experiments)
	}
	return &ExperimentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[experimentmodels.Experiment](coll),
	}, nil
}

// buildExperiment dựng document Experiment từ input, áp default status=draft.
func buildExperiment(input *experimentdto.ExperimentCreateInput) experimentmodels.Experiment {
	doc := experimentmodels.Experiment{
		Name:        input.Name,
		Description: input.Description,
		CreativeIDs: input.CreativeIDs,
		Status:      input.Status,
		Hypothesis:  input.Hypothesis,
	}
	if doc.Status == "" {
		doc.Status = experimentmodels.StatusDraft
	}
	if doc.CreativeIDs == nil {
		doc.CreativeIDs = []string{}
	}
	return doc
}

// CreateExperiment tạo experiment mới với defaults đã được áp.
func (s *ExperimentService) CreateExperiment(ctx context.Context, input *experimentdto.ExperimentCreateInput) (*experimentmodels.Experiment, error) {
	doc := buildExperiment(input)
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindAll trả về toàn bộ experiment theo thứ tự tự nhiên của collection.
func (s *ExperimentService) FindAll(ctx context.Context) ([]experimentmodels.Experiment, error) {
	return s.Find(ctx, nil, nil)
}
