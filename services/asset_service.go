package services

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"premium-blog-api/models"

	"github.com/google/uuid"
)

// MaxAssetSize caps cover-image uploads at 5 MiB.
const MaxAssetSize = 5 << 20

var extensionByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type AssetService interface {
	// Store validates and persists an uploaded image, returning its public
	// URL path. Non-image or oversized uploads fail with a ValidationError.
	Store(file *multipart.FileHeader, ownerID string) (string, error)
}

type assetService struct {
	dir     string
	baseURL string
}

func NewAssetService(dir, baseURL string) AssetService {
	return &assetService{dir: dir, baseURL: baseURL}
}

func (s *assetService) Store(file *multipart.FileHeader, ownerID string) (string, error) {
	if file.Size > MaxAssetSize {
		return "", models.NewValidationError("file", "image size must be less than 5MB")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Sniff the real content type instead of trusting the upload headers.
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return "", models.NewValidationError("file", "only image uploads are allowed")
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	ext, ok := extensionByContentType[contentType]
	if !ok {
		ext = ".img"
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.baseURL + "/" + name, nil
}
