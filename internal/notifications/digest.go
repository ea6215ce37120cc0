package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// EmailResolver maps a user to their contact address for the digest email.
type EmailResolver func(ctx context.Context, userID uuid.UUID) (string, error)

// Digest runs the scheduled notification maintenance: a daily unread-summary
// email per seller and archival of notices older than the retention window.
type Digest struct {
	service      *Service
	archive      *Archive
	resolveEmail EmailResolver
	retention    time.Duration
	logger       *zap.Logger
	cron         *cron.Cron
}

// NewDigest creates the digest worker. archive may be nil to skip archival
// and resolveEmail may be nil to skip digest emails.
func NewDigest(service *Service, archive *Archive, resolveEmail EmailResolver, retention time.Duration, logger *zap.Logger) *Digest {
	return &Digest{
		service:      service,
		archive:      archive,
		resolveEmail: resolveEmail,
		retention:    retention,
		logger:       logger,
		cron:         cron.New(),
	}
}

// Start schedules the daily run at 06:00 server time.
func (d *Digest) Start() error {
	_, err := d.cron.AddFunc("0 6 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := d.Run(ctx); err != nil {
			d.logger.Error("notification digest failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule digest: %w", err)
	}
	d.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (d *Digest) Stop() {
	<-d.cron.Stop().Done()
}

// Run performs one digest cycle.
func (d *Digest) Run(ctx context.Context) error {
	entries, err := d.service.DigestEntries(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if d.service.email == nil || d.resolveEmail == nil {
			continue
		}
		email, err := d.resolveEmail(ctx, entry.UserID)
		if err != nil || email == "" {
			continue
		}
		subject := fmt.Sprintf("You have %d unread updates", entry.UnreadCount)
		if err := d.service.email.Send(ctx, email, subject, digestBody(entry)); err != nil {
			d.logger.Warn("digest email failed",
				zap.String("user_id", entry.UserID.String()),
				zap.Error(err))
		}
	}

	if d.archive != nil && d.retention > 0 {
		purged, err := d.service.PurgeOlderThan(ctx, time.Now().Add(-d.retention))
		if err != nil {
			return err
		}
		if err := d.archive.Store(ctx, purged); err != nil {
			return err
		}
		if len(purged) > 0 {
			d.logger.Info("archived notifications", zap.Int("count", len(purged)))
		}
	}
	return nil
}

func digestBody(entry DigestEntry) string {
	var b strings.Builder
	b.WriteString("Recent updates on your seller profile:\n\n")
	for _, n := range entry.Latest {
		b.WriteString(fmt.Sprintf("- [%s] %s\n", n.Severity, n.Message))
	}
	return b.String()
}
