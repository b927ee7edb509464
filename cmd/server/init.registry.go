package main

import (
	"meta_creatives/config"
	"meta_creatives/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	// Không có kết nối database thì không đăng ký collection nào,
	// các service sẽ chạy ở chế độ degraded
	if global.MongoDB_Session == nil {
		logrus.Warn("Chưa có kết nối MongoDB, bỏ qua đăng ký collection registry")
		return
	}

	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Infof("Initialized collection registry: %v", global.RegistryCollections.Names())
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.DatabaseName)
	colNames := []string{
		global.MongoDB_ColNames.Creatives,
		global.MongoDB_ColNames.Experiments,
		global.MongoDB_ColNames.Feedback,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
