package onboarding

import (
	"context"
	"io"
)

// Client is the profile backend boundary: one fetch per section and one
// update per editable section. final-review is read-only and has no updater.
type Client interface {
	GetBusinessInfo(ctx context.Context) (*BusinessInfo, error)
	GetGoalsMetrics(ctx context.Context) (*GoalsMetrics, error)
	GetBusinessOverview(ctx context.Context) (*BusinessOverview, error)
	GetCapabilitiesOperations(ctx context.Context) (*CapabilitiesOperations, error)
	GetComplianceCredentials(ctx context.Context) (*ComplianceCredentials, error)
	GetBrandPresence(ctx context.Context) (*BrandPresence, error)
	GetProfileSummary(ctx context.Context) (*ProfileSummary, error)

	UpdateBusinessInfo(ctx context.Context, data *BusinessInfo) error
	UpdateGoalsMetrics(ctx context.Context, data *GoalsMetrics) error
	UpdateBusinessOverview(ctx context.Context, data *BusinessOverview) error
	UpdateCapabilitiesOperations(ctx context.Context, data *CapabilitiesOperations) error
	UpdateComplianceCredentials(ctx context.Context, data *ComplianceCredentials) error
	UpdateBrandPresence(ctx context.Context, data *BrandPresence) error
}

// File is a file submitted for upload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredFile is the result of a successful storage upload. Image uploads
// populate ImageURL, document uploads populate FileURL.
type StoredFile struct {
	ImageURL string `json:"imageUrl,omitempty"`
	FileURL  string `json:"fileUrl,omitempty"`
}

// URL returns whichever stored location the backend filled in.
func (f *StoredFile) URL() string {
	if f == nil {
		return ""
	}
	if f.ImageURL != "" {
		return f.ImageURL
	}
	return f.FileURL
}

// FileStore is the storage boundary for profile file uploads.
type FileStore interface {
	UploadProductImage(ctx context.Context, file File) (*StoredFile, error)
	UploadProfileImage(ctx context.Context, file File) (*StoredFile, error)
	UploadPDF(ctx context.Context, file File) (*StoredFile, error)
}

// Severity classifies a user-facing notice.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notifier is the toast-style side channel for user-facing notices.
type Notifier interface {
	Notify(severity Severity, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(severity Severity, message string)

func (f NotifierFunc) Notify(severity Severity, message string) { f(severity, message) }
