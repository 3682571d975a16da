package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}

	return &CloudinaryStorage{
		cld:    cld,
		folder: folder,
	}, nil
}

// Upload returns the asset's qualified public ID, which the other methods
// accept as the file path.
func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, filePath string, contentType string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: s.publicID(filePath),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return resp.PublicID, nil
}

func (s *CloudinaryStorage) Download(ctx context.Context, filePath string) (io.ReadCloser, error) {
	url, err := s.GetURL(ctx, filePath, 0)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("file not found: %s", filePath)
	}

	return resp.Body, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, filePath string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: filePath,
	})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *CloudinaryStorage) GetURL(ctx context.Context, filePath string, expiry time.Duration) (string, error) {
	asset, err := s.cld.Image(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to build asset url: %w", err)
	}
	return asset.String()
}

func (s *CloudinaryStorage) Exists(ctx context.Context, filePath string) (bool, error) {
	resp, err := s.cld.Admin.Asset(ctx, admin.AssetParams{PublicID: filePath})
	if err != nil {
		return false, fmt.Errorf("failed to look up asset: %w", err)
	}
	return resp.PublicID != "", nil
}

// publicID strips the extension; cloudinary keys assets without it.
func (s *CloudinaryStorage) publicID(filePath string) string {
	base := path.Base(filePath)
	return strings.TrimSuffix(base, path.Ext(base))
}
