// Package storage saves uploaded images and returns a public URL for them.
// With CLOUDINARY_URL set images go to Cloudinary; otherwise they land on
// local disk under UPLOAD_DIR and are served from /uploads by the router.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const defaultUploadDir = "./uploads"

// UploadDir is where local uploads are written and served from.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return defaultUploadDir
}

// SaveImage stores the uploaded file under the given subdir ("products",
// "categories") and returns its public URL.
func SaveImage(ctx context.Context, file *multipart.FileHeader, subdir string) (string, error) {
	if cloudURL := os.Getenv("CLOUDINARY_URL"); cloudURL != "" {
		return saveToCloudinary(ctx, file, cloudURL)
	}
	return saveToDisk(file, subdir)
}

func saveToCloudinary(ctx context.Context, file *multipart.FileHeader, cloudURL string) (string, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary init: %w", err)
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	result, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return result.SecureURL, nil
}

func saveToDisk(file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(UploadDir(), subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}
