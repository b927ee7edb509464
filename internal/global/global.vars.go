package global

import (
	"meta_creatives/config"
	"meta_creatives/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Creatives   string // Tên collection cho creative quảng cáo
	Experiments string // Tên collection cho experiment A/B test
	Feedback    string // Tên collection cho feedback chấm điểm creative
}

// Các biến toàn cục
var Validate *validator.Validate                                          // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                        // Phiên kết nối tới MongoDB (nil nếu chưa cấu hình)
var MongoDB_ServerConfig *config.Configuration                            // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
