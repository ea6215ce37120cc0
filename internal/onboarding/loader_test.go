package onboarding

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestLoader(client Client) (*Loader, *StateStore, *recordingNotifier) {
	store := NewStateStore()
	notifier := &recordingNotifier{}
	return NewLoader(store, client, notifier, testLogger()), store, notifier
}

func TestLoadPopulatesCurrentAndOriginal(t *testing.T) {
	client := new(MockClient)
	loader, store, notifier := newTestLoader(client)

	fetched := &BusinessInfo{
		BusinessName:       "Acme Textiles",
		BusinessTypes:      []string{"manufacturer"},
		BusinessCategories: []string{"apparel"},
	}
	client.On("GetBusinessInfo", mock.Anything).Return(fetched, nil).Once()

	err := loader.Load(context.Background(), SectionBusinessInfo)

	assert.NoError(t, err)
	assert.Equal(t, fetched, store.GetCurrent(SectionBusinessInfo))
	assert.Equal(t, fetched, store.GetOriginal(SectionBusinessInfo))
	assert.False(t, store.IsDirty(SectionBusinessInfo))
	assert.Empty(t, notifier.all())
	client.AssertExpectations(t)
}

func TestLoadFailureFallsBackToDefault(t *testing.T) {
	client := new(MockClient)
	loader, store, notifier := newTestLoader(client)

	client.On("GetBusinessInfo", mock.Anything).Return(nil, errors.New("boom")).Once()

	err := loader.Load(context.Background(), SectionBusinessInfo)
	assert.NoError(t, err)

	want := &BusinessInfo{
		BusinessName:        "",
		BusinessDescription: "",
		WebsiteLink:         "",
		BusinessAddress:     "",
		RoleInCompany:       "",
		BusinessTypes:       []string{},
		BusinessCategories:  []string{},
	}
	assert.Equal(t, want, store.GetCurrent(SectionBusinessInfo))
	assert.False(t, store.IsDirty(SectionBusinessInfo), "default fallback is a clean baseline")

	last, ok := notifier.last()
	assert.True(t, ok)
	assert.Equal(t, SeverityError, last.severity)
	assert.Equal(t, "Failed to load business info data", last.message)
}

func TestLoadEmptyResponseFallsBackToDefault(t *testing.T) {
	client := new(MockClient)
	loader, store, _ := newTestLoader(client)

	client.On("GetGoalsMetrics", mock.Anything).Return(nil, nil).Once()

	err := loader.Load(context.Background(), SectionGoalsMetrics)
	assert.NoError(t, err)
	assert.Equal(t, SectionGoalsMetrics.DefaultValue(), store.GetCurrent(SectionGoalsMetrics))
}

func TestLoadIsIdempotent(t *testing.T) {
	client := new(MockClient)
	loader, _, _ := newTestLoader(client)

	client.On("GetBrandPresence", mock.Anything).
		Return(SectionBrandPresence.DefaultValue().(*BrandPresence), nil).Once()

	ctx := context.Background()
	assert.NoError(t, loader.Load(ctx, SectionBrandPresence))
	assert.NoError(t, loader.Load(ctx, SectionBrandPresence))

	client.AssertNumberOfCalls(t, "GetBrandPresence", 1)
}

// slowClient blocks its single fetch until released, to exercise the
// in-flight guard under real concurrency.
type slowClient struct {
	MockClient
	gate  chan struct{}
	calls int
	mu    sync.Mutex
}

func (c *slowClient) GetBusinessInfo(ctx context.Context) (*BusinessInfo, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	<-c.gate
	return SectionBusinessInfo.DefaultValue().(*BusinessInfo), nil
}

func TestConcurrentLoadsIssueOneFetch(t *testing.T) {
	client := &slowClient{gate: make(chan struct{})}
	loader, store, _ := newTestLoader(client)

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = loader.Load(ctx, SectionBusinessInfo)
		}()
	}

	// One goroutine is fetching, the other must have no-opped; release and join.
	close(client.gate)
	wg.Wait()

	client.mu.Lock()
	calls := client.calls
	client.mu.Unlock()
	assert.Equal(t, 1, calls, "in-flight guard must suppress the second fetch")
	assert.NotNil(t, store.GetCurrent(SectionBusinessInfo))
	assert.False(t, loader.Loading(SectionBusinessInfo))
}

func TestLoadUnknownSection(t *testing.T) {
	loader, _, _ := newTestLoader(new(MockClient))
	err := loader.Load(context.Background(), Section("mystery"))
	assert.Error(t, err)
}
