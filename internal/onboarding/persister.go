package onboarding

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// updateFunc pushes one section's current value to the backend.
type updateFunc func(ctx context.Context, c Client, v Value) error

// sectionUpdaters is the fixed dispatch table from section to update call.
// final-review has no update endpoint and is absent on purpose.
var sectionUpdaters = map[Section]updateFunc{
	SectionBusinessInfo: func(ctx context.Context, c Client, v Value) error {
		return c.UpdateBusinessInfo(ctx, v.(*BusinessInfo))
	},
	SectionGoalsMetrics: func(ctx context.Context, c Client, v Value) error {
		return c.UpdateGoalsMetrics(ctx, v.(*GoalsMetrics))
	},
	SectionBusinessOverview: func(ctx context.Context, c Client, v Value) error {
		return c.UpdateBusinessOverview(ctx, v.(*BusinessOverview))
	},
	SectionCapabilitiesOperations: func(ctx context.Context, c Client, v Value) error {
		return c.UpdateCapabilitiesOperations(ctx, v.(*CapabilitiesOperations))
	},
	SectionComplianceCredentials: func(ctx context.Context, c Client, v Value) error {
		return c.UpdateComplianceCredentials(ctx, v.(*ComplianceCredentials))
	},
	SectionBrandPresence: func(ctx context.Context, c Client, v Value) error {
		return c.UpdateBrandPresence(ctx, v.(*BrandPresence))
	},
}

// Persister pushes dirty sections to the backend and re-baselines the
// saved snapshot on success.
type Persister struct {
	store    *StateStore
	client   Client
	notifier Notifier
	logger   *zap.Logger

	mu     sync.Mutex
	saving bool
}

// NewPersister creates a persister bound to a store and backend client.
func NewPersister(store *StateStore, client Client, notifier Notifier, logger *zap.Logger) *Persister {
	return &Persister{
		store:    store,
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
}

// Saving reports whether a save call is currently outstanding.
func (p *Persister) Saving() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saving
}

// Save persists a section's current value if it is dirty, then promotes it
// to the new baseline. A clean section surfaces an informational notice and
// performs no network I/O. A failed save leaves the baseline untouched so
// the section stays dirty and retryable.
func (p *Persister) Save(ctx context.Context, section Section) error {
	if !p.store.IsDirty(section) {
		p.notifier.Notify(SeverityInfo, "No changes to save")
		return nil
	}

	p.setSaving(true)
	defer p.setSaving(false)

	update, ok := sectionUpdaters[section]
	if !ok {
		// final-review is read-only; reaching here is a deliberate no-op.
		return nil
	}

	if err := update(ctx, p.client, p.store.GetCurrent(section)); err != nil {
		p.logger.Error("failed to update section",
			zap.String("section", string(section)),
			zap.Error(err))
		p.notifier.Notify(SeverityError, fmt.Sprintf("Failed to update %s", section.DisplayName()))
		return err
	}

	p.store.rebaseline(section)
	p.notifier.Notify(SeveritySuccess, fmt.Sprintf("%s updated successfully", section.DisplayName()))
	return nil
}

func (p *Persister) setSaving(v bool) {
	p.mu.Lock()
	p.saving = v
	p.mu.Unlock()
}
