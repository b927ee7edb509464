// Package creativesvc - Service cho domain creative (collection "creative").
package creativesvc

import (
	"context"

	basesvc "meta_creatives/internal/api/base/service"
	creativedto "meta_creatives/internal/api/creative/dto"
	creativemodels "meta_creatives/internal/api/creative/models"
	"meta_creatives/internal/global"
	"meta_creatives/internal/logger"
)

// CreativeService xử lý tạo mới và truy vấn creative.
type CreativeService struct {
	*basesvc.BaseServiceMongoImpl[creativemodels.Creative]
}

// NewCreativeService tạo CreativeService mới.
// Nếu collection chưa được đăng ký (database chưa cấu hình), service vẫn được tạo
// và các thao tác dữ liệu sẽ trả về lỗi kết nối.
func NewCreativeService() (*CreativeService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Creatives)
	if !exist {
		logger.GetAppLogger().Warnf("Collection %s chưa được đăng ký, CreativeService chạy ở chế độ degraded", global.MongoDB_ColNames.Creatives)
	}
	return &CreativeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[creativemodels.Creative](coll),
	}, nil
}

// buildCreative dựng document Creative từ input, áp các giá trị mặc định của schema:
// platform=meta, format=image, tags=mảng rỗng.
func buildCreative(input *creativedto.CreativeCreateInput) creativemodels.Creative {
	doc := creativemodels.Creative{
		Name:        input.Name,
		MediaURL:    input.MediaURL,
		Headline:    input.Headline,
		PrimaryText: input.PrimaryText,
		CTA:         input.CTA,
		Platform:    input.Platform,
		Format:      input.Format,
		Tags:        input.Tags,
	}
	if doc.Platform == "" {
		doc.Platform = creativemodels.PlatformMeta
	}
	if doc.Format == "" {
		doc.Format = creativemodels.FormatImage
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	return doc
}

// CreateCreative tạo creative mới với defaults đã được áp.
func (s *CreativeService) CreateCreative(ctx context.Context, input *creativedto.CreativeCreateInput) (*creativemodels.Creative, error) {
	doc := buildCreative(input)
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindAll trả về toàn bộ creative theo thứ tự tự nhiên của collection.
func (s *CreativeService) FindAll(ctx context.Context) ([]creativemodels.Creative, error) {
	return s.Find(ctx, nil, nil)
}
