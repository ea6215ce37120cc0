package profileapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"kollabee/seller-portal/seller-portal-backend/internal/onboarding"
)

// FileStore uploads files through the profile API's multipart endpoints and
// satisfies the onboarding file-store boundary.
type FileStore struct {
	client *Client
}

// NewFileStore wraps a profile API client for uploads.
func NewFileStore(client *Client) *FileStore {
	return &FileStore{client: client}
}

func (s *FileStore) UploadProductImage(ctx context.Context, file onboarding.File) (*onboarding.StoredFile, error) {
	return s.upload(ctx, "/seller/upload/product-image", file)
}

func (s *FileStore) UploadProfileImage(ctx context.Context, file onboarding.File) (*onboarding.StoredFile, error) {
	return s.upload(ctx, "/seller/upload/profile-image", file)
}

func (s *FileStore) UploadPDF(ctx context.Context, file onboarding.File) (*onboarding.StoredFile, error) {
	return s.upload(ctx, "/seller/upload/pdf", file)
}

func (s *FileStore) upload(ctx context.Context, path string, file onboarding.File) (*onboarding.StoredFile, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	header.Set("Content-Type", file.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.Name, err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.baseURL+path, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.client.token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("POST %s: unexpected status %d", path, resp.StatusCode)
	}

	var stored onboarding.StoredFile
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
