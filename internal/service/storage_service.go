package service

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rizkyfm/job-board-api/internal/config"
)

// Upload kinds and the directories they land in.
const (
	KindResume      = "resume"
	KindPortfolio   = "portfolio"
	KindCompanyLogo = "companyLogo"
)

var kindDirs = map[string]string{
	KindResume:      "resumes",
	KindPortfolio:   "portfolios",
	KindCompanyLogo: "company-logos",
}

// allowedExtensions is the document/image allow-list for uploads, with the
// content type used when serving the file back.
var allowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".zip":  "application/zip",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type UploadedFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
}

type StorageServiceInterface interface {
	Save(file *multipart.FileHeader, kind string) (*UploadedFile, error)
	Resolve(dir, filename string) (string, string, error)
}

// StorageService stores uploads on the local disk under one base directory,
// one subdirectory per kind.
type StorageService struct {
	baseDir string
	maxSize int64
}

func NewStorageService() (*StorageService, error) {
	cfg := config.LoadUploadConfig()
	s := &StorageService{baseDir: cfg.BaseDir, maxSize: cfg.MaxFileSize}
	for _, dir := range kindDirs {
		if err := os.MkdirAll(filepath.Join(s.baseDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return s, nil
}

// Save validates the upload against the allow-list and size cap, then writes
// it under a unique name and returns the stable path stored on the
// application record.
func (s *StorageService) Save(file *multipart.FileHeader, kind string) (*UploadedFile, error) {
	dir, ok := kindDirs[kind]
	if !ok {
		return nil, fmt.Errorf("unknown upload kind %q", kind)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("invalid file type %q: only PDF, DOC, DOCX, ZIP, JPG, and PNG files are allowed", ext)
	}
	if file.Size > s.maxSize {
		return nil, fmt.Errorf("file too large: maximum size is %d bytes", s.maxSize)
	}

	name := uniqueName(kind, ext)
	dst := filepath.Join(s.baseDir, dir, name)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	size, err := io.Copy(out, src)
	if err != nil {
		os.Remove(dst)
		return nil, err
	}

	return &UploadedFile{
		Filename: name,
		Path:     filepath.ToSlash(filepath.Join("uploads", dir, name)),
		Size:     size,
	}, nil
}

// Resolve maps a serve request (directory + filename) to the on-disk path and
// content type. Filenames are reduced to their base to keep requests inside
// the upload tree.
func (s *StorageService) Resolve(dir, filename string) (string, string, error) {
	valid := false
	for _, d := range kindDirs {
		if d == dir {
			valid = true
			break
		}
	}
	if !valid {
		return "", "", fmt.Errorf("invalid file type %q", dir)
	}

	filename = filepath.Base(filename)
	ct, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		ct = "application/octet-stream"
	}

	path := filepath.Join(s.baseDir, dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", "", err
	}
	return path, ct, nil
}

func uniqueName(kind, ext string) string {
	return fmt.Sprintf("%s-%d-%d%s", kind, time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}
