package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	intconfig "alhudha-backend/internal/config"
	"alhudha-backend/internal/domain"
	"alhudha-backend/internal/utils"
)

// UploadService persists document scans as flat files. It knows nothing about
// travelers; callers attach the returned path to a scan field themselves.
type UploadService struct {
	Dir       string
	RequestID string
}

// StoredFile describes one persisted upload.
type StoredFile struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`
}

func (s UploadService) dir() string {
	if s.Dir != "" {
		return s.Dir
	}
	return intconfig.UploadDir()
}

// Store writes src under "<type>_<epoch-millis><ext>". Two uploads of the
// same type within the same millisecond would collide; accepted for an
// admin tool's upload rate.
func (s UploadService) Store(src io.Reader, originalName, fileType, mimeType string) (StoredFile, error) {
	fileType = sanitizeTypeTag(fileType)
	if fileType == "" {
		fileType = "document"
	}

	ext := filepath.Ext(filepath.Base(originalName))
	name := fmt.Sprintf("%s_%d%s", fileType, time.Now().UnixMilli(), ext)

	if err := os.MkdirAll(s.dir(), 0o755); err != nil {
		return StoredFile{}, err
	}

	dst, err := os.Create(filepath.Join(s.dir(), name))
	if err != nil {
		return StoredFile{}, err
	}
	size, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return StoredFile{}, err
	}

	utils.LogEvent(s.RequestID, "upload", "store", "file="+name)
	return StoredFile{
		Name:     name,
		Path:     "/uploads/" + name,
		Type:     fileType,
		Size:     size,
		MimeType: mimeType,
	}, nil
}

// Retrieve resolves a stored filename to its on-disk path, or not-found.
// The name is flattened to its base so callers cannot traverse out of the dir.
func (s UploadService) Retrieve(filename string) (string, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", domain.NotFoundError{Resource: "File"}
	}

	path := filepath.Join(s.dir(), name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", domain.NotFoundError{Resource: "File", Err: err}
	}
	return path, nil
}

// sanitizeTypeTag keeps the type tag safe to embed in a filename.
func sanitizeTypeTag(tag string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, strings.TrimSpace(tag))
}
