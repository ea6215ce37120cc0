package onboarding

import (
	"encoding/json"
	"reflect"
	"time"
)

// Value is a section's form value. Concrete types are one of the section
// structs below; cloning always produces an independent deep copy so the
// edited value can never alias the saved baseline.
type Value interface {
	Clone() Value
}

// FilePreview is the in-form representation of an uploaded (or pending)
// file before the section is persisted.
type FilePreview struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size,omitempty"`
}

// BusinessInfo is the business-info section value.
type BusinessInfo struct {
	BusinessName        string   `json:"businessName"`
	BusinessDescription string   `json:"businessDescription"`
	WebsiteLink         string   `json:"websiteLink"`
	BusinessAddress     string   `json:"businessAddress"`
	RoleInCompany       string   `json:"roleInCompany"`
	BusinessTypes       []string `json:"businessTypes"`
	BusinessCategories  []string `json:"businessCategories"`
}

// GoalsMetrics is the goals-metrics section value.
type GoalsMetrics struct {
	SelectedObjectives []string `json:"selectedObjectives"`
	SelectedChallenges []string `json:"selectedChallenges"`
	SelectedMetrics    []string `json:"selectedMetrics"`
	Agreement          bool     `json:"agreement"`
}

// BusinessOverview is the business-overview section value.
type BusinessOverview struct {
	BusinessName           string   `json:"businessName"`
	BusinessDescription    string   `json:"businessDescription"`
	WebsiteLink            string   `json:"websiteLink"`
	BusinessAddress        string   `json:"businessAddress"`
	YearFounded            *int     `json:"yearFounded"`
	TeamSize               string   `json:"teamSize"`
	AnnualRevenue          string   `json:"annualRevenue"`
	BusinessTypes          []string `json:"businessTypes"`
	BusinessCategories     []string `json:"businessCategories"`
	LanguagesSpoken        []string `json:"languagesSpoken"`
	OtherLanguageSelected  bool     `json:"otherLanguageSelected"`
	OtherLanguages         []string `json:"otherLanguages"`
	BusinessAttributes     []string `json:"businessAttributes"`
	OtherAttributeSelected bool     `json:"otherAttributeSelected"`
	OtherAttributes        []string `json:"otherAttributes"`
	LogoPreview            string   `json:"logoPreview"`
}

// CapabilitiesOperations is the capabilities-operations section value.
type CapabilitiesOperations struct {
	ServicesProvided     []string      `json:"servicesProvided"`
	OtherServiceSelected bool          `json:"otherServiceSelected"`
	OtherServices        []string      `json:"otherServices"`
	ProductionModel      string        `json:"productionModel"`
	ProductionCountries  []string      `json:"productionCountries"`
	OtherCountrySelected bool          `json:"otherCountrySelected"`
	OtherCountries       []string      `json:"otherCountries"`
	ProvidesSamples      bool          `json:"providesSamples"`
	SampleDispatchTime   string        `json:"sampleDispatchTime"`
	ProductionTimeline   string        `json:"productionTimeline"`
	MinimumOrderQuantity string        `json:"minimumOrderQuantity"`
	LowMoqFlexibility    bool          `json:"lowMoqFlexibility"`
	FactoryImages        []string      `json:"factoryImages"`
	FactoryImagePreviews []FilePreview `json:"factoryImagePreviews"`
}

// ComplianceCredentials is the compliance-credentials section value.
type ComplianceCredentials struct {
	BusinessRegistration  []string      `json:"businessRegistration"`
	BusinessRegPreview    *FilePreview  `json:"businessRegPreview"`
	CertificationTypes    []string      `json:"certificationTypes"`
	OtherCertSelected     bool          `json:"otherCertSelected"`
	OtherCertifications   []string      `json:"otherCertifications"`
	Certifications        []string      `json:"certifications"`
	CertificationPreviews []FilePreview `json:"certificationPreviews"`
	ClientLogos           []string      `json:"clientLogos"`
	ClientLogoPreviews    []FilePreview `json:"clientLogoPreviews"`
	NotableClients        []string      `json:"notableClients"`
}

// BrandPresence is the brand-presence section value.
type BrandPresence struct {
	ProjectImages        []string      `json:"projectImages"`
	ProjectImagePreviews []FilePreview `json:"projectImagePreviews"`
	BrandVideo           string        `json:"brandVideo"`
	VideoPreview         *FilePreview  `json:"videoPreview"`
	SocialMediaLinks     string        `json:"socialMediaLinks"`
	AdditionalNotes      string        `json:"additionalNotes"`
}

// ProfileSummary is the read-only final-review section value.
type ProfileSummary struct {
	BusinessName        string     `json:"businessName"`
	ContactEmail        string     `json:"contactEmail"`
	PendingSteps        []string   `json:"pendingSteps"`
	ApprovalRequested   bool       `json:"approvalRequested"`
	ApprovalRequestedAt *time.Time `json:"approvalRequestedAt"`
	IsApproved          bool       `json:"isApproved"`
}

func (v *BusinessInfo) Clone() Value           { return cloneValue(v) }
func (v *GoalsMetrics) Clone() Value           { return cloneValue(v) }
func (v *BusinessOverview) Clone() Value       { return cloneValue(v) }
func (v *CapabilitiesOperations) Clone() Value { return cloneValue(v) }
func (v *ComplianceCredentials) Clone() Value  { return cloneValue(v) }
func (v *BrandPresence) Clone() Value          { return cloneValue(v) }
func (v *ProfileSummary) Clone() Value         { return cloneValue(v) }

// cloneValue deep-copies a section value through a JSON round trip into a
// fresh instance of the same concrete type.
func cloneValue[T any](v *T) *T {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		out := *v
		return &out
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		copied := *v
		return &copied
	}
	return out
}

// valuesEqual reports structural equality of two section values. Comparison
// is value-based, not serialization-order-based.
func valuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
