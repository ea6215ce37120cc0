package onboarding

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"go.uber.org/zap"
)

const (
	maxFileSize      = 5 * 1024 * 1024
	maxVideoFileSize = 50 * 1024 * 1024

	defaultProgressInterval = 300 * time.Millisecond
	defaultProgressClear    = time.Second
)

var (
	imageMIMETypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	documentMIMETypes = map[string]bool{
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	}
	videoMIMETypes = map[string]bool{
		"video/mp4":       true,
		"video/quicktime": true,
		"video/x-msvideo": true,
	}

	imageOnlyFields = map[string]bool{
		"businessLogo":  true,
		"factoryImages": true,
		"projectImages": true,
		"clientLogos":   true,
	}
	documentFields = map[string]bool{
		"businessRegistration": true,
		"certifications":       true,
	}
)

// UploadTracker validates and uploads a single file for a named form field,
// publishing synthetic progress so the UI can show feedback while the real
// storage call runs.
type UploadTracker struct {
	files    FileStore
	notifier Notifier
	logger   *zap.Logger

	// tick/clear timings are fixed in production and shortened in tests.
	tickInterval time.Duration
	clearDelay   time.Duration

	mu       sync.Mutex
	progress map[string]int
}

// NewUploadTracker creates a tracker using the default progress timings.
func NewUploadTracker(files FileStore, notifier Notifier, logger *zap.Logger) *UploadTracker {
	return &UploadTracker{
		files:        files,
		notifier:     notifier,
		logger:       logger,
		tickInterval: defaultProgressInterval,
		clearDelay:   defaultProgressClear,
		progress:     make(map[string]int),
	}
}

// Progress returns the current progress percentage for a field and whether
// an entry exists for it.
func (u *UploadTracker) Progress(field string) (int, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.progress[field]
	return p, ok
}

// Upload validates the file against the field's size and type rules, uploads
// it through the matching storage path, and returns the stored URL. Failures
// are logged and surfaced as notices; the returned URL is empty on any
// failure and the error never needs to reach the user.
func (u *UploadTracker) Upload(ctx context.Context, file File, field string) (string, error) {
	if err := u.validate(file, field); err != nil {
		return "", err
	}

	u.setProgress(field, 0)
	stopTicker := u.startTicker(field)

	stored, err := u.dispatch(ctx, file, field)
	stopTicker()

	if err != nil {
		u.logger.Error("file upload failed",
			zap.String("field", field),
			zap.String("file", file.Name),
			zap.Error(err))
		u.notifier.Notify(SeverityError, fmt.Sprintf("Failed to upload %s", humanizeField(field)))
		u.clearProgress(field)
		return "", err
	}

	u.setProgress(field, 100)
	time.AfterFunc(u.clearDelay, func() { u.clearProgress(field) })

	return stored.URL(), nil
}

// validate applies the size limit first, then the per-field MIME rules.
// Fields outside the known groups carry no type restriction.
func (u *UploadTracker) validate(file File, field string) error {
	limit := int64(maxFileSize)
	if field == "brandVideo" {
		limit = maxVideoFileSize
	}
	if file.Size > limit {
		u.notifier.Notify(SeverityError,
			fmt.Sprintf("File size exceeds the maximum limit of %dMB", limit/(1024*1024)))
		return fmt.Errorf("file %q exceeds %d bytes", file.Name, limit)
	}

	switch {
	case imageOnlyFields[field]:
		if !imageMIMETypes[file.ContentType] {
			u.notifier.Notify(SeverityError, "Please upload a valid image file (JPEG, PNG, GIF, WEBP)")
			return fmt.Errorf("invalid image type %q for field %q", file.ContentType, field)
		}
	case documentFields[field]:
		if !imageMIMETypes[file.ContentType] && !documentMIMETypes[file.ContentType] {
			u.notifier.Notify(SeverityError, "Please upload a valid document or image file (PDF, DOC, DOCX, JPEG, PNG)")
			return fmt.Errorf("invalid document type %q for field %q", file.ContentType, field)
		}
	case field == "brandVideo":
		if !videoMIMETypes[file.ContentType] {
			u.notifier.Notify(SeverityError, "Please upload a valid video file (MP4, MOV, AVI)")
			return fmt.Errorf("invalid video type %q for field %q", file.ContentType, field)
		}
	}
	return nil
}

// dispatch picks the storage path from the file MIME and field name. Image
// MIMEs on the gallery fields go to product-image storage, other images to
// profile-image storage; PDFs and the document-capable fields go to the PDF
// path. brandVideo also goes through the PDF path for now.
// TODO: route brandVideo to a dedicated video endpoint once storage exposes one.
func (u *UploadTracker) dispatch(ctx context.Context, file File, field string) (*StoredFile, error) {
	switch {
	case strings.HasPrefix(file.ContentType, "image/"):
		if imageOnlyFields[field] {
			return u.files.UploadProductImage(ctx, file)
		}
		return u.files.UploadProfileImage(ctx, file)
	case file.ContentType == "application/pdf" || documentFields[field] || field == "brandVideo":
		return u.files.UploadPDF(ctx, file)
	}
	return nil, fmt.Errorf("no upload route for field %q with type %q", field, file.ContentType)
}

// startTicker advances the field's progress by 10 every tick, capped at 90,
// until the returned stop function is called.
func (u *UploadTracker) startTicker(field string) (stop func()) {
	ticker := time.NewTicker(u.tickInterval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				u.mu.Lock()
				if p, ok := u.progress[field]; ok && p < 90 {
					u.progress[field] = p + 10
				}
				u.mu.Unlock()
			}
		}
	}()

	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

func (u *UploadTracker) setProgress(field string, v int) {
	u.mu.Lock()
	u.progress[field] = v
	u.mu.Unlock()
}

func (u *UploadTracker) clearProgress(field string) {
	u.mu.Lock()
	delete(u.progress, field)
	u.mu.Unlock()
}

// humanizeField turns a camelCase field name into words for notices
// ("brandVideo" -> "brand video").
func humanizeField(field string) string {
	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
