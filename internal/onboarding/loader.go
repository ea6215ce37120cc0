package onboarding

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// fetchFunc fetches one section's persisted value.
type fetchFunc func(ctx context.Context, c Client) (Value, error)

// sectionFetchers is the fixed dispatch table from section to fetch call.
var sectionFetchers = map[Section]fetchFunc{
	SectionBusinessInfo: func(ctx context.Context, c Client) (Value, error) {
		return c.GetBusinessInfo(ctx)
	},
	SectionGoalsMetrics: func(ctx context.Context, c Client) (Value, error) {
		return c.GetGoalsMetrics(ctx)
	},
	SectionBusinessOverview: func(ctx context.Context, c Client) (Value, error) {
		return c.GetBusinessOverview(ctx)
	},
	SectionCapabilitiesOperations: func(ctx context.Context, c Client) (Value, error) {
		return c.GetCapabilitiesOperations(ctx)
	},
	SectionComplianceCredentials: func(ctx context.Context, c Client) (Value, error) {
		return c.GetComplianceCredentials(ctx)
	},
	SectionBrandPresence: func(ctx context.Context, c Client) (Value, error) {
		return c.GetBrandPresence(ctx)
	},
	SectionFinalReview: func(ctx context.Context, c Client) (Value, error) {
		return c.GetProfileSummary(ctx)
	},
}

// Loader populates a section's state on first access. A failed or empty
// fetch falls back to the section's default value, which still counts as a
// clean baseline so the flow can continue.
type Loader struct {
	store    *StateStore
	client   Client
	notifier Notifier
	logger   *zap.Logger

	mu       sync.Mutex
	inFlight map[Section]bool
}

// NewLoader creates a loader bound to a store and backend client.
func NewLoader(store *StateStore, client Client, notifier Notifier, logger *zap.Logger) *Loader {
	return &Loader{
		store:    store,
		client:   client,
		notifier: notifier,
		logger:   logger,
		inFlight: make(map[Section]bool),
	}
}

// Loading reports whether a load for the section is currently in flight.
func (l *Loader) Loading(section Section) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inFlight[section]
}

// Load fetches a section's persisted value unless it is already loaded or a
// load is in flight. The in-flight marker is taken before the fetch starts,
// under the same lock as the check, so near-simultaneous activations of one
// section issue exactly one fetch.
func (l *Loader) Load(ctx context.Context, section Section) error {
	fetch, ok := sectionFetchers[section]
	if !ok {
		return fmt.Errorf("unknown section %q", section)
	}

	l.mu.Lock()
	if l.store.loaded(section) || l.inFlight[section] {
		l.mu.Unlock()
		return nil
	}
	l.inFlight[section] = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		delete(l.inFlight, section)
		l.mu.Unlock()
	}()

	value, err := fetch(ctx, l.client)
	if err != nil || isNilValue(value) {
		if err != nil {
			l.logger.Error("failed to load section data",
				zap.String("section", string(section)),
				zap.Error(err))
		}
		l.notifier.Notify(SeverityError, fmt.Sprintf("Failed to load %s data", section.DisplayName()))
		l.store.setLoaded(section, section.DefaultValue())
		return nil
	}

	l.store.setLoaded(section, value)
	return nil
}

// isNilValue reports whether a Value interface holds no usable value,
// including a typed nil pointer returned through the interface.
func isNilValue(v Value) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case *BusinessInfo:
		return t == nil
	case *GoalsMetrics:
		return t == nil
	case *BusinessOverview:
		return t == nil
	case *CapabilitiesOperations:
		return t == nil
	case *ComplianceCredentials:
		return t == nil
	case *BrandPresence:
		return t == nil
	case *ProfileSummary:
		return t == nil
	}
	return false
}
