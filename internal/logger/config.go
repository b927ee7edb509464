package logger

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level      logrus.Level // Mức log tối thiểu
	Dir        string       // Thư mục chứa file log
	MaxSizeMB  int          // Kích thước tối đa mỗi file log (MB) trước khi rotate
	MaxBackups int          // Số file log cũ giữ lại
	MaxAgeDays int          // Số ngày giữ file log cũ
	Compress   bool         // Nén file log cũ
	ToStdout   bool         // Ghi log đồng thời ra stdout
}

// DefaultConfig trả về cấu hình logging mặc định, đọc từ environment variables:
// LOG_LEVEL (debug/info/warn/error), LOG_DIR, LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      logrus.InfoLevel,
		Dir:        "logs",
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Compress:   true,
		ToStdout:   true,
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := logrus.ParseLevel(lvl); err == nil {
			cfg.Level = parsed
		}
	}
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		cfg.Dir = dir
	}
	if v := os.Getenv("LOG_MAX_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSizeMB = n
		}
	}
	if v := os.Getenv("LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxBackups = n
		}
	}
	if v := os.Getenv("LOG_MAX_AGE_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxAgeDays = n
		}
	}

	return cfg
}
