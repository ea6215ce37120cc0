package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateStoreUnloadedSectionsAreClean(t *testing.T) {
	store := NewStateStore()

	for _, section := range Sections {
		assert.False(t, store.IsDirty(section), "section %s should not be dirty before load", section)
		assert.Nil(t, store.GetCurrent(section))
		assert.Nil(t, store.GetOriginal(section))
	}
}

func TestStateStoreLoadSetsCleanBaseline(t *testing.T) {
	store := NewStateStore()
	value := &BusinessInfo{
		BusinessName:       "Acme Textiles",
		BusinessTypes:      []string{"manufacturer"},
		BusinessCategories: []string{"apparel"},
	}

	store.setLoaded(SectionBusinessInfo, value)

	assert.False(t, store.IsDirty(SectionBusinessInfo))
	assert.Equal(t, value, store.GetCurrent(SectionBusinessInfo))
	assert.Equal(t, value, store.GetOriginal(SectionBusinessInfo))
}

func TestStateStoreLoadedCopiesDoNotAlias(t *testing.T) {
	store := NewStateStore()
	store.setLoaded(SectionBusinessInfo, &BusinessInfo{
		BusinessTypes:      []string{"manufacturer"},
		BusinessCategories: []string{},
	})

	cur := store.GetCurrent(SectionBusinessInfo).(*BusinessInfo)
	cur.BusinessTypes[0] = "wholesaler"

	orig := store.GetOriginal(SectionBusinessInfo).(*BusinessInfo)
	assert.Equal(t, "manufacturer", orig.BusinessTypes[0],
		"mutating the current value must not leak into the baseline")
}

func TestStateStoreEditMakesDirty(t *testing.T) {
	store := NewStateStore()
	store.setLoaded(SectionGoalsMetrics, &GoalsMetrics{
		SelectedObjectives: []string{},
		SelectedChallenges: []string{},
		SelectedMetrics:    []string{},
	})

	store.SetCurrent(SectionGoalsMetrics, &GoalsMetrics{
		SelectedObjectives: []string{"grow-exports"},
		SelectedChallenges: []string{},
		SelectedMetrics:    []string{},
		Agreement:          true,
	})

	assert.True(t, store.IsDirty(SectionGoalsMetrics))
	assert.True(t, store.Touched(SectionGoalsMetrics))
}

func TestStateStoreEquivalentEditStaysClean(t *testing.T) {
	store := NewStateStore()
	store.setLoaded(SectionBusinessInfo, &BusinessInfo{
		BusinessName:       "Acme",
		BusinessTypes:      []string{"manufacturer"},
		BusinessCategories: []string{},
	})

	// The UI re-submits a structurally identical value.
	store.SetCurrent(SectionBusinessInfo, &BusinessInfo{
		BusinessName:       "Acme",
		BusinessTypes:      []string{"manufacturer"},
		BusinessCategories: []string{},
	})

	assert.False(t, store.IsDirty(SectionBusinessInfo))
	assert.True(t, store.Touched(SectionBusinessInfo))
}

func TestStateStoreRebaselineClearsDirty(t *testing.T) {
	store := NewStateStore()
	store.setLoaded(SectionBrandPresence, SectionBrandPresence.DefaultValue())

	edited := &BrandPresence{
		ProjectImages:        []string{"https://cdn.example.com/p1.png"},
		ProjectImagePreviews: []FilePreview{},
		SocialMediaLinks:     "https://instagram.com/acme",
	}
	store.SetCurrent(SectionBrandPresence, edited)
	assert.True(t, store.IsDirty(SectionBrandPresence))

	store.rebaseline(SectionBrandPresence)

	assert.False(t, store.IsDirty(SectionBrandPresence))
	assert.Equal(t, edited, store.GetOriginal(SectionBrandPresence))
}
