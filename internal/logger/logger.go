// Package logger quản lý các logrus logger instances của ứng dụng,
// ghi ra file có rotation (lumberjack) kèm stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers map lưu các logger instances theo tên
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config chứa cấu hình logging hiện hành
	config *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình.
// Truyền nil để dùng cấu hình mặc định (đọc từ environment variables).
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	// Tạo thư mục logs nếu chưa tồn tại
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	return nil
}

// GetLogger trả về logger theo tên, tạo mới nếu chưa có.
// Mỗi logger ghi vào file <dir>/<name>.log riêng, có rotation.
// Gọi được trước Init: khi đó logger chỉ ghi ra stdout.
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if log, ok := loggers[name]; ok {
		return log
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if config == nil {
		// Chưa Init: chỉ ghi ra stdout (ví dụ trong unit test)
		log.SetLevel(logrus.InfoLevel)
		log.SetOutput(os.Stdout)
		loggers[name] = log
		return log
	}

	log.SetLevel(config.Level)

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(config.Dir, name+".log"),
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
		Compress:   config.Compress,
	}

	if config.ToStdout {
		log.SetOutput(io.MultiWriter(fileWriter, os.Stdout))
	} else {
		log.SetOutput(fileWriter)
	}

	loggers[name] = log
	return log
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// WithRequest trả về log entry kèm thông tin request hiện tại (request id, method, path)
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	})

	// Request ID middleware của Fiber set vào Locals
	var requestID string
	if rid := c.Locals("requestid"); rid != nil {
		if ridStr, ok := rid.(string); ok {
			requestID = ridStr
		}
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	return entry
}
