package onboarding

import "strings"

// Section identifies one step of the multi-step seller profile form.
type Section string

const (
	SectionBusinessInfo           Section = "business-info"
	SectionGoalsMetrics           Section = "goals-metrics"
	SectionBusinessOverview       Section = "business-overview"
	SectionCapabilitiesOperations Section = "capabilities-operations"
	SectionComplianceCredentials  Section = "compliance-credentials"
	SectionBrandPresence          Section = "brand-presence"
	SectionFinalReview            Section = "final-review"
)

// Sections lists every section in stepper order.
var Sections = []Section{
	SectionBusinessInfo,
	SectionGoalsMetrics,
	SectionBusinessOverview,
	SectionCapabilitiesOperations,
	SectionComplianceCredentials,
	SectionBrandPresence,
	SectionFinalReview,
}

// SectionMeta carries the display metadata shown alongside each step.
type SectionMeta struct {
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var sectionMeta = map[Section]SectionMeta{
	SectionBusinessInfo: {
		Label:       "Business Info",
		Title:       "Business Information",
		Description: "Provide details about your business to help buyers understand your offerings.",
	},
	SectionGoalsMetrics: {
		Label:       "Goals & Metrics",
		Title:       "Goals & Metrics",
		Description: "Help us understand your priorities so we can tailor the platform to your needs.",
	},
	SectionBusinessOverview: {
		Label:       "Business Overview",
		Title:       "Business Overview",
		Description: "Confirm your contact and business info before continuing.",
	},
	SectionCapabilitiesOperations: {
		Label:       "Capabilities & Operations",
		Title:       "Capabilities & Operations",
		Description: "Define what you offer and how you work.",
	},
	SectionComplianceCredentials: {
		Label:       "Compliance & Credentials",
		Title:       "Compliance & Credentials",
		Description: "Help buyers trust your business.",
	},
	SectionBrandPresence: {
		Label:       "Brand Presence",
		Title:       "Brand Presence",
		Description: "Showcase your brand and past work.",
	},
	SectionFinalReview: {
		Label:       "Final Review & Submit",
		Title:       "Final Review & Submit",
		Description: "Review all submitted information before final approval.",
	},
}

// Meta returns the display metadata for a section.
func (s Section) Meta() SectionMeta {
	return sectionMeta[s]
}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	_, ok := sectionMeta[s]
	return ok
}

// DisplayName returns the human-readable section name used in notices,
// with hyphens replaced by spaces ("goals-metrics" -> "goals metrics").
func (s Section) DisplayName() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

// DefaultValue returns the hard-coded fallback value used when a section
// has never been saved or its load fails. Each call returns a fresh value.
func (s Section) DefaultValue() Value {
	switch s {
	case SectionBusinessInfo:
		return &BusinessInfo{
			BusinessTypes:      []string{},
			BusinessCategories: []string{},
		}
	case SectionGoalsMetrics:
		return &GoalsMetrics{
			SelectedObjectives: []string{},
			SelectedChallenges: []string{},
			SelectedMetrics:    []string{},
		}
	case SectionBusinessOverview:
		return &BusinessOverview{
			BusinessTypes:      []string{},
			BusinessCategories: []string{},
			LanguagesSpoken:    []string{},
			BusinessAttributes: []string{},
			OtherLanguages:     []string{},
			OtherAttributes:    []string{},
		}
	case SectionCapabilitiesOperations:
		return &CapabilitiesOperations{
			ServicesProvided:     []string{},
			OtherServices:        []string{},
			ProductionCountries:  []string{},
			OtherCountries:       []string{},
			FactoryImages:        []string{},
			FactoryImagePreviews: []FilePreview{},
		}
	case SectionComplianceCredentials:
		return &ComplianceCredentials{
			BusinessRegistration:  []string{},
			CertificationTypes:    []string{},
			OtherCertifications:   []string{},
			Certifications:        []string{},
			CertificationPreviews: []FilePreview{},
			ClientLogos:           []string{},
			ClientLogoPreviews:    []FilePreview{},
			NotableClients:        []string{},
		}
	case SectionBrandPresence:
		return &BrandPresence{
			ProjectImages:        []string{},
			ProjectImagePreviews: []FilePreview{},
		}
	case SectionFinalReview:
		return &ProfileSummary{
			PendingSteps: []string{},
		}
	}
	return nil
}
