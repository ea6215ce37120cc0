package onboarding

import (
	"context"

	"go.uber.org/zap"
)

// Manager owns the form state for one onboarding session: it composes the
// state store, lazy section loader, persister, and upload tracker over a
// shared backend client. One manager instance exists per session and its
// state lives only as long as the session.
type Manager struct {
	store     *StateStore
	loader    *Loader
	persister *Persister
	uploads   *UploadTracker
}

// NewManager wires a manager from its collaborators.
func NewManager(client Client, files FileStore, notifier Notifier, logger *zap.Logger) *Manager {
	store := NewStateStore()
	return &Manager{
		store:     store,
		loader:    NewLoader(store, client, notifier, logger),
		persister: NewPersister(store, client, notifier, logger),
		uploads:   NewUploadTracker(files, notifier, logger),
	}
}

// LoadSection lazily fetches a section's persisted data on first activation.
func (m *Manager) LoadSection(ctx context.Context, section Section) error {
	return m.loader.Load(ctx, section)
}

// SetFormValue applies a user edit, replacing the section's full value.
func (m *Manager) SetFormValue(section Section, value Value) {
	m.store.SetCurrent(section, value)
}

// FormValue returns the section's editable value, or nil before load.
func (m *Manager) FormValue(section Section) Value {
	return m.store.GetCurrent(section)
}

// HasChanges reports whether the section differs from its saved baseline.
func (m *Manager) HasChanges(section Section) bool {
	return m.store.IsDirty(section)
}

// SaveSection persists the section if dirty and re-baselines on success.
func (m *Manager) SaveSection(ctx context.Context, section Section) error {
	return m.persister.Save(ctx, section)
}

// UploadFile validates and uploads a file for a named field.
func (m *Manager) UploadFile(ctx context.Context, file File, field string) (string, error) {
	return m.uploads.Upload(ctx, file, field)
}

// UploadProgress returns the synthetic progress for a field, if tracked.
func (m *Manager) UploadProgress(field string) (int, bool) {
	return m.uploads.Progress(field)
}

// SectionLoading reports whether a load is in flight for the section.
func (m *Manager) SectionLoading(section Section) bool {
	return m.loader.Loading(section)
}

// Saving reports whether a section save is outstanding.
func (m *Manager) Saving() bool {
	return m.persister.Saving()
}
