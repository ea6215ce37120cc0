package storage

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"kollabee/seller-portal/seller-portal-backend/internal/onboarding"
)

// UploadService stores profile files under purpose-specific key prefixes and
// implements the onboarding file-store boundary.
type UploadService struct {
	s3 S3Client
}

// NewUploadService creates an upload service over an S3 client.
func NewUploadService(s3 S3Client) *UploadService {
	return &UploadService{s3: s3}
}

func (s *UploadService) UploadProductImage(ctx context.Context, file onboarding.File) (*onboarding.StoredFile, error) {
	url, err := s.put(ctx, "products/images", file)
	if err != nil {
		return nil, err
	}
	return &onboarding.StoredFile{ImageURL: url}, nil
}

func (s *UploadService) UploadProfileImage(ctx context.Context, file onboarding.File) (*onboarding.StoredFile, error) {
	url, err := s.put(ctx, "profiles/images", file)
	if err != nil {
		return nil, err
	}
	return &onboarding.StoredFile{ImageURL: url}, nil
}

func (s *UploadService) UploadPDF(ctx context.Context, file onboarding.File) (*onboarding.StoredFile, error) {
	url, err := s.put(ctx, "documents", file)
	if err != nil {
		return nil, err
	}
	return &onboarding.StoredFile{FileURL: url}, nil
}

// put writes the file under a collision-free key and returns its URL.
func (s *UploadService) put(ctx context.Context, prefix string, file onboarding.File) (string, error) {
	key := s.generateKey(prefix, file.Name)
	url, err := s.s3.Upload(ctx, key, file.Content, file.ContentType)
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", file.Name, err)
	}
	return url, nil
}

func (s *UploadService) generateKey(prefix, fileName string) string {
	return fmt.Sprintf("%s/%s/%s%s",
		prefix,
		time.Now().UTC().Format("2006/01"),
		uuid.New().String(),
		path.Ext(fileName))
}
