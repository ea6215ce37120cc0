package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestPersister(client Client) (*Persister, *StateStore, *recordingNotifier) {
	store := NewStateStore()
	notifier := &recordingNotifier{}
	return NewPersister(store, client, notifier, testLogger()), store, notifier
}

func TestSaveCleanSectionSkipsNetwork(t *testing.T) {
	client := new(MockClient)
	persister, store, notifier := newTestPersister(client)

	store.setLoaded(SectionBusinessInfo, SectionBusinessInfo.DefaultValue())

	err := persister.Save(context.Background(), SectionBusinessInfo)
	assert.NoError(t, err)

	last, ok := notifier.last()
	assert.True(t, ok)
	assert.Equal(t, SeverityInfo, last.severity)
	assert.Equal(t, "No changes to save", last.message)
	client.AssertNotCalled(t, "UpdateBusinessInfo", mock.Anything, mock.Anything)
}

func TestSaveDirtySectionRebaselines(t *testing.T) {
	client := new(MockClient)
	persister, store, notifier := newTestPersister(client)

	store.setLoaded(SectionBusinessInfo, SectionBusinessInfo.DefaultValue())
	edited := &BusinessInfo{
		BusinessName:       "Acme Textiles",
		BusinessTypes:      []string{"manufacturer"},
		BusinessCategories: []string{},
	}
	store.SetCurrent(SectionBusinessInfo, edited)

	client.On("UpdateBusinessInfo", mock.Anything, edited).Return(nil).Once()

	err := persister.Save(context.Background(), SectionBusinessInfo)
	assert.NoError(t, err)
	assert.False(t, store.IsDirty(SectionBusinessInfo))
	assert.Equal(t, edited, store.GetOriginal(SectionBusinessInfo))

	last, ok := notifier.last()
	assert.True(t, ok)
	assert.Equal(t, SeveritySuccess, last.severity)
	assert.Equal(t, "business info updated successfully", last.message)
	client.AssertExpectations(t)
}

func TestSaveFailureKeepsSectionDirty(t *testing.T) {
	client := new(MockClient)
	persister, store, notifier := newTestPersister(client)

	baseline := SectionGoalsMetrics.DefaultValue()
	store.setLoaded(SectionGoalsMetrics, baseline)
	store.SetCurrent(SectionGoalsMetrics, &GoalsMetrics{
		SelectedObjectives: []string{"expand"},
		SelectedChallenges: []string{},
		SelectedMetrics:    []string{},
	})

	client.On("UpdateGoalsMetrics", mock.Anything, mock.Anything).
		Return(errors.New("backend down")).Once()

	err := persister.Save(context.Background(), SectionGoalsMetrics)
	assert.Error(t, err)
	assert.True(t, store.IsDirty(SectionGoalsMetrics), "failed save must stay retryable")
	assert.Equal(t, baseline, store.GetOriginal(SectionGoalsMetrics))

	last, ok := notifier.last()
	assert.True(t, ok)
	assert.Equal(t, SeverityError, last.severity)
	assert.Equal(t, "Failed to update goals metrics", last.message)
	assert.False(t, persister.Saving())
}

func TestSaveFinalReviewIsNoOp(t *testing.T) {
	client := new(MockClient)
	persister, store, _ := newTestPersister(client)

	store.setLoaded(SectionFinalReview, SectionFinalReview.DefaultValue())
	store.SetCurrent(SectionFinalReview, &ProfileSummary{
		BusinessName: "Acme Textiles",
		PendingSteps: []string{"brand-presence"},
	})
	assert.True(t, store.IsDirty(SectionFinalReview))

	err := persister.Save(context.Background(), SectionFinalReview)
	assert.NoError(t, err)
	assert.True(t, store.IsDirty(SectionFinalReview), "final-review save must not rebaseline")
	assert.False(t, persister.Saving())
	// No updater exists for final-review, so no client method may be hit.
	client.AssertExpectations(t)
}

func TestSaveUnloadedSectionIsClean(t *testing.T) {
	client := new(MockClient)
	persister, _, notifier := newTestPersister(client)

	err := persister.Save(context.Background(), SectionBrandPresence)
	assert.NoError(t, err)

	last, ok := notifier.last()
	assert.True(t, ok)
	assert.Equal(t, "No changes to save", last.message)
}
