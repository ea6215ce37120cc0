package seller

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Seller is the persisted seller profile. Columns cover every onboarding
// section; each section's GET/PUT reads or writes its own slice of this row.
type Seller struct {
	ID     uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID uuid.UUID `json:"user_id" gorm:"not null;uniqueIndex;type:uuid"`

	// business-info / business-overview
	ContactEmail        string         `json:"contact_email" gorm:""`
	BusinessName        string         `json:"business_name" gorm:""`
	BusinessDescription string         `json:"business_description" gorm:""`
	WebsiteLink         string         `json:"website_link" gorm:""`
	BusinessAddress     string         `json:"business_address" gorm:""`
	RoleInCompany       string         `json:"role_in_company" gorm:""`
	BusinessTypes       pq.StringArray `json:"business_types" gorm:"type:text[]"`
	BusinessCategories  pq.StringArray `json:"business_categories" gorm:"type:text[]"`
	BusinessLogo        string         `json:"business_logo" gorm:""`
	YearFounded         *int           `json:"year_founded" gorm:""`
	TeamSize            string         `json:"team_size" gorm:""`
	AnnualRevenue       string         `json:"annual_revenue" gorm:""`
	LanguagesSpoken     pq.StringArray `json:"languages_spoken" gorm:"type:text[]"`
	BusinessAttributes  pq.StringArray `json:"business_attributes" gorm:"type:text[]"`

	// goals-metrics
	Objectives pq.StringArray `json:"objectives" gorm:"type:text[]"`
	Challenges pq.StringArray `json:"challenges" gorm:"type:text[]"`
	Metrics    pq.StringArray `json:"metrics" gorm:"type:text[]"`
	Agreement  bool           `json:"agreement" gorm:"default:false"`

	// capabilities-operations
	ServicesProvided     pq.StringArray `json:"services_provided" gorm:"type:text[]"`
	ProductionModel      string         `json:"production_model" gorm:""`
	ProductionCountries  pq.StringArray `json:"production_countries" gorm:"type:text[]"`
	ProvidesSamples      bool           `json:"provides_samples" gorm:"default:false"`
	SampleDispatchTime   string         `json:"sample_dispatch_time" gorm:""`
	ProductionTimeline   string         `json:"production_timeline" gorm:""`
	MinimumOrderQuantity string         `json:"minimum_order_quantity" gorm:""`
	LowMoqFlexibility    bool           `json:"low_moq_flexibility" gorm:"default:false"`
	FactoryImages        pq.StringArray `json:"factory_images" gorm:"type:text[]"`

	// compliance-credentials
	BusinessRegistration pq.StringArray `json:"business_registration" gorm:"type:text[]"`
	CertificationTypes   pq.StringArray `json:"certification_types" gorm:"type:text[]"`
	Certificates         pq.StringArray `json:"certificates" gorm:"type:text[]"`
	ClientLogos          pq.StringArray `json:"client_logos" gorm:"type:text[]"`
	NotableClients       pq.StringArray `json:"notable_clients" gorm:"type:text[]"`

	// brand-presence
	ProjectImages    pq.StringArray `json:"project_images" gorm:"type:text[]"`
	BrandVideo       string         `json:"brand_video" gorm:""`
	SocialMediaLinks string         `json:"social_media_links" gorm:""`
	AdditionalNotes  string         `json:"additional_notes" gorm:""`

	// approval
	Approved            bool       `json:"approved" gorm:"default:false"`
	ApprovalRequested   bool       `json:"approval_requested" gorm:"default:false"`
	ApprovalRequestedAt *time.Time `json:"approval_requested_at" gorm:""`

	Metadata  datatypes.JSON `json:"metadata" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}
