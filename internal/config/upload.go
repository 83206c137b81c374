package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type UploadConfig struct {
	BaseDir     string
	MaxFileSize int64
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		baseDir := os.Getenv("UPLOAD_DIR")
		if baseDir == "" {
			baseDir = "./uploads"
		}
		maxSize := int64(5 * 1024 * 1024)
		if raw := os.Getenv("MAX_FILE_SIZE"); raw != "" {
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
				maxSize = n
			} else {
				log.Printf("Warning: invalid MAX_FILE_SIZE %q, using default", raw)
			}
		}
		uploadConfig = &UploadConfig{
			BaseDir:     baseDir,
			MaxFileSize: maxSize,
		}
	})
	return uploadConfig
}
