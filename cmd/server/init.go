package main

import (
	"meta_creatives/config"
	"meta_creatives/internal/database"
	"meta_creatives/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Creatives = "creative"
	global.MongoDB_ColNames.Experiments = "experiment"
	global.MongoDB_ColNames.Feedback = "feedback"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database.
// DATABASE_URL không bắt buộc: nếu thiếu hoặc kết nối thất bại, server vẫn chạy
// ở chế độ degraded, các route dữ liệu sẽ trả lỗi hệ thống.
func initDatabase_MongoDB() {
	cfg := global.MongoDB_ServerConfig
	if cfg.DatabaseURL == "" {
		logrus.Warn("DATABASE_URL chưa được cấu hình, bỏ qua kết nối MongoDB")
		return
	}

	session, err := database.GetInstance(cfg)
	if err != nil {
		logrus.Warnf("Failed to get database instance: %v, server chạy ở chế độ degraded", err)
		return
	}
	global.MongoDB_Session = session
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công
}
