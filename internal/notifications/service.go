package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kollabee/seller-portal/seller-portal-backend/internal/notifications/websocket"
	"kollabee/seller-portal/seller-portal-backend/internal/onboarding"
)

// EmailSender delivers a single email. Implemented by the SESv2 channel.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers a single text message. Implemented by the SNS channel.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// Preferences exposes the seller's push preference. Implemented by the
// settings service.
type Preferences interface {
	LiveToastsEnabled(ctx context.Context, userID uuid.UUID) bool
}

// Service records seller notices, pushes them over WebSocket, and fans
// important events out to email and SMS.
type Service struct {
	db     *gorm.DB
	ws     *websocket.Manager
	email  EmailSender
	sms    SMSSender
	prefs  Preferences
	logger *zap.Logger
}

// NewService creates the notification service and migrates its table.
// ws, email, sms, and prefs may be nil when those pieces are disabled.
func NewService(db *gorm.DB, ws *websocket.Manager, email EmailSender, sms SMSSender, prefs Preferences, logger *zap.Logger) (*Service, error) {
	if err := db.AutoMigrate(&Notification{}); err != nil {
		return nil, fmt.Errorf("failed to migrate notifications table: %w", err)
	}
	return &Service{db: db, ws: ws, email: email, sms: sms, prefs: prefs, logger: logger}, nil
}

// allowsToasts defaults to pushing when no preference source is wired.
func (s *Service) allowsToasts(ctx context.Context, userID uuid.UUID) bool {
	if s.prefs == nil {
		return true
	}
	return s.prefs.LiveToastsEnabled(ctx, userID)
}

// Record persists a notice and pushes it to the seller's live sockets.
func (s *Service) Record(ctx context.Context, userID uuid.UUID, severity onboarding.Severity, message string) error {
	notification := &Notification{
		UserID:   userID,
		Severity: string(severity),
		Message:  message,
	}
	if err := s.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	if s.ws != nil && s.allowsToasts(ctx, userID) {
		err := s.ws.SendToUser(userID.String(), websocket.Message{
			Type:     websocket.MessageTypeNotice,
			Severity: string(severity),
			Text:     message,
		})
		if err != nil {
			// Seller is offline; the bell menu picks the notice up later.
			s.logger.Debug("websocket push skipped", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	return nil
}

// ForUser adapts the service to the onboarding notifier boundary for a
// single seller. Persistence failures are logged, not surfaced; a toast
// must never fail the operation that raised it.
func (s *Service) ForUser(userID uuid.UUID) onboarding.Notifier {
	return onboarding.NotifierFunc(func(severity onboarding.Severity, message string) {
		if err := s.Record(context.Background(), userID, severity, message); err != nil {
			s.logger.Error("failed to record notice",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	})
}

// List returns the seller's notices, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Notification, error) {
	var items []Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return items, nil
}

// UnreadCount returns how many notices the seller has not opened.
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead flags a notice as opened.
func (s *Service) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	now := time.Now()
	result := s.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]any{"read": true, "read_at": now})
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

// AnnounceApprovalRequest tells the review team channels that a seller
// finished onboarding. Channel failures are logged and swallowed; the
// approval request itself already succeeded.
func (s *Service) AnnounceApprovalRequest(ctx context.Context, userID uuid.UUID, businessName, contactEmail, reviewerPhone string) {
	if s.email != nil && contactEmail != "" {
		subject := "Your profile was submitted for review"
		body := fmt.Sprintf("Hi %s,\n\nYour seller profile has been submitted for approval. We will email you once the review completes.\n", businessName)
		if err := s.email.Send(ctx, contactEmail, subject, body); err != nil {
			s.logger.Warn("approval email failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	if s.sms != nil && reviewerPhone != "" {
		text := fmt.Sprintf("New seller approval request: %s", businessName)
		if err := s.sms.Send(ctx, reviewerPhone, text); err != nil {
			s.logger.Warn("approval sms failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	if s.ws != nil && s.allowsToasts(ctx, userID) {
		s.ws.SendToUser(userID.String(), websocket.Message{
			Type: websocket.MessageTypeApproval,
			Text: "Profile submitted for review",
		})
	}
}

// PurgeOlderThan deletes notices created before the cutoff and returns
// copies of the removed rows for archival.
func (s *Service) PurgeOlderThan(ctx context.Context, cutoff time.Time) ([]Notification, error) {
	var old []Notification
	err := s.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Find(&old).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load stale notifications: %w", err)
	}
	if len(old) == 0 {
		return nil, nil
	}
	if err := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&Notification{}).Error; err != nil {
		return nil, fmt.Errorf("failed to purge stale notifications: %w", err)
	}
	return old, nil
}

// DigestEntries collects per-seller unread summaries for the daily digest.
func (s *Service) DigestEntries(ctx context.Context, since time.Time) ([]DigestEntry, error) {
	var userIDs []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&Notification{}).
		Where("created_at >= ? AND read = ?", since, false).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to collect digest users: %w", err)
	}

	entries := make([]DigestEntry, 0, len(userIDs))
	for _, userID := range userIDs {
		count, err := s.UnreadCount(ctx, userID)
		if err != nil {
			return nil, err
		}
		latest, err := s.List(ctx, userID, 5, 0)
		if err != nil {
			return nil, err
		}
		entries = append(entries, DigestEntry{
			UserID:      userID,
			UnreadCount: count,
			Latest:      latest,
		})
	}
	return entries, nil
}
