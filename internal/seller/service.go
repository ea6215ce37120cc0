package seller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kollabee/seller-portal/seller-portal-backend/internal/onboarding"
)

// Indexer keeps the search index in step with profile changes. Both calls
// are best-effort and never fail the database operation they follow.
type Indexer interface {
	IndexSeller(ctx context.Context, seller *Seller) error
	DeleteSeller(ctx context.Context, sellerID string) error
}

// Announcer fans an accepted approval request out to the review channels.
// Implemented by the notifications service.
type Announcer interface {
	AnnounceApprovalRequest(ctx context.Context, userID uuid.UUID, businessName, contactEmail, reviewerPhone string)
}

// Service exposes the per-section profile reads and writes the onboarding
// client consumes, plus completion and approval.
type Service interface {
	GetBusinessInfo(ctx context.Context, userID uuid.UUID) (*onboarding.BusinessInfo, error)
	UpdateBusinessInfo(ctx context.Context, userID uuid.UUID, data *onboarding.BusinessInfo) error
	GetGoalsMetrics(ctx context.Context, userID uuid.UUID) (*onboarding.GoalsMetrics, error)
	UpdateGoalsMetrics(ctx context.Context, userID uuid.UUID, data *onboarding.GoalsMetrics) error
	GetBusinessOverview(ctx context.Context, userID uuid.UUID) (*onboarding.BusinessOverview, error)
	UpdateBusinessOverview(ctx context.Context, userID uuid.UUID, data *onboarding.BusinessOverview) error
	GetCapabilitiesOperations(ctx context.Context, userID uuid.UUID) (*onboarding.CapabilitiesOperations, error)
	UpdateCapabilitiesOperations(ctx context.Context, userID uuid.UUID, data *onboarding.CapabilitiesOperations) error
	GetComplianceCredentials(ctx context.Context, userID uuid.UUID) (*onboarding.ComplianceCredentials, error)
	UpdateComplianceCredentials(ctx context.Context, userID uuid.UUID, data *onboarding.ComplianceCredentials) error
	GetBrandPresence(ctx context.Context, userID uuid.UUID) (*onboarding.BrandPresence, error)
	UpdateBrandPresence(ctx context.Context, userID uuid.UUID, data *onboarding.BrandPresence) error

	GetProfileSummary(ctx context.Context, userID uuid.UUID) (*onboarding.ProfileSummary, error)
	PendingStepNames(ctx context.Context, userID uuid.UUID) ([]string, error)
	RequestApproval(ctx context.Context, userID uuid.UUID) error
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
	ReindexAll(ctx context.Context) error
}

type service struct {
	repo          Repository
	indexer       Indexer
	announcer     Announcer
	reviewerPhone string
	logger        *zap.Logger
}

// NewService creates the seller profile service. indexer and announcer may
// be nil when search or review notifications are disabled.
func NewService(repo Repository, indexer Indexer, announcer Announcer, reviewerPhone string, logger *zap.Logger) Service {
	return &service{repo: repo, indexer: indexer, announcer: announcer, reviewerPhone: reviewerPhone, logger: logger}
}

// ensure loads the seller row for a user, creating an empty profile on
// first access so every section GET has something to read.
func (s *service) ensure(ctx context.Context, userID uuid.UUID) (*Seller, error) {
	seller, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return seller, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	seller = &Seller{UserID: userID}
	if err := s.repo.Create(ctx, seller); err != nil {
		return nil, fmt.Errorf("failed to create seller profile: %w", err)
	}
	return seller, nil
}

func (s *service) save(ctx context.Context, seller *Seller) error {
	if err := s.repo.Update(ctx, seller); err != nil {
		return err
	}
	if s.indexer != nil {
		if err := s.indexer.IndexSeller(ctx, seller); err != nil {
			s.logger.Warn("failed to index seller profile",
				zap.String("seller_id", seller.ID.String()),
				zap.Error(err))
		}
	}
	return nil
}

func (s *service) GetBusinessInfo(ctx context.Context, userID uuid.UUID) (*onboarding.BusinessInfo, error) {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &onboarding.BusinessInfo{
		BusinessName:        seller.BusinessName,
		BusinessDescription: seller.BusinessDescription,
		WebsiteLink:         seller.WebsiteLink,
		BusinessAddress:     seller.BusinessAddress,
		RoleInCompany:       seller.RoleInCompany,
		BusinessTypes:       strSlice(seller.BusinessTypes),
		BusinessCategories:  strSlice(seller.BusinessCategories),
	}, nil
}

func (s *service) UpdateBusinessInfo(ctx context.Context, userID uuid.UUID, data *onboarding.BusinessInfo) error {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return err
	}
	seller.BusinessName = data.BusinessName
	seller.BusinessDescription = data.BusinessDescription
	seller.WebsiteLink = data.WebsiteLink
	seller.BusinessAddress = data.BusinessAddress
	seller.RoleInCompany = data.RoleInCompany
	seller.BusinessTypes = data.BusinessTypes
	seller.BusinessCategories = data.BusinessCategories
	return s.save(ctx, seller)
}

func (s *service) GetGoalsMetrics(ctx context.Context, userID uuid.UUID) (*onboarding.GoalsMetrics, error) {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &onboarding.GoalsMetrics{
		SelectedObjectives: strSlice(seller.Objectives),
		SelectedChallenges: strSlice(seller.Challenges),
		SelectedMetrics:    strSlice(seller.Metrics),
		Agreement:          seller.Agreement,
	}, nil
}

func (s *service) UpdateGoalsMetrics(ctx context.Context, userID uuid.UUID, data *onboarding.GoalsMetrics) error {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return err
	}
	seller.Objectives = data.SelectedObjectives
	seller.Challenges = data.SelectedChallenges
	seller.Metrics = data.SelectedMetrics
	seller.Agreement = data.Agreement
	return s.save(ctx, seller)
}

func (s *service) GetBusinessOverview(ctx context.Context, userID uuid.UUID) (*onboarding.BusinessOverview, error) {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &onboarding.BusinessOverview{
		BusinessName:        seller.BusinessName,
		BusinessDescription: seller.BusinessDescription,
		WebsiteLink:         seller.WebsiteLink,
		BusinessAddress:     seller.BusinessAddress,
		YearFounded:         seller.YearFounded,
		TeamSize:            seller.TeamSize,
		AnnualRevenue:       seller.AnnualRevenue,
		BusinessTypes:       strSlice(seller.BusinessTypes),
		BusinessCategories:  strSlice(seller.BusinessCategories),
		LanguagesSpoken:     strSlice(seller.LanguagesSpoken),
		OtherLanguages:      []string{},
		BusinessAttributes:  strSlice(seller.BusinessAttributes),
		OtherAttributes:     []string{},
		LogoPreview:         seller.BusinessLogo,
	}, nil
}

func (s *service) UpdateBusinessOverview(ctx context.Context, userID uuid.UUID, data *onboarding.BusinessOverview) error {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return err
	}
	seller.BusinessName = data.BusinessName
	seller.BusinessDescription = data.BusinessDescription
	seller.WebsiteLink = data.WebsiteLink
	seller.BusinessAddress = data.BusinessAddress
	seller.YearFounded = data.YearFounded
	seller.TeamSize = data.TeamSize
	seller.AnnualRevenue = data.AnnualRevenue
	seller.BusinessTypes = data.BusinessTypes
	seller.BusinessCategories = data.BusinessCategories
	seller.LanguagesSpoken = append(strSlice(data.LanguagesSpoken), data.OtherLanguages...)
	seller.BusinessAttributes = append(strSlice(data.BusinessAttributes), data.OtherAttributes...)
	if data.LogoPreview != "" {
		seller.BusinessLogo = data.LogoPreview
	}
	return s.save(ctx, seller)
}

func (s *service) GetCapabilitiesOperations(ctx context.Context, userID uuid.UUID) (*onboarding.CapabilitiesOperations, error) {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &onboarding.CapabilitiesOperations{
		ServicesProvided:     strSlice(seller.ServicesProvided),
		OtherServices:        []string{},
		ProductionModel:      seller.ProductionModel,
		ProductionCountries:  strSlice(seller.ProductionCountries),
		OtherCountries:       []string{},
		ProvidesSamples:      seller.ProvidesSamples,
		SampleDispatchTime:   seller.SampleDispatchTime,
		ProductionTimeline:   seller.ProductionTimeline,
		MinimumOrderQuantity: seller.MinimumOrderQuantity,
		LowMoqFlexibility:    seller.LowMoqFlexibility,
		FactoryImages:        strSlice(seller.FactoryImages),
		FactoryImagePreviews: []onboarding.FilePreview{},
	}, nil
}

func (s *service) UpdateCapabilitiesOperations(ctx context.Context, userID uuid.UUID, data *onboarding.CapabilitiesOperations) error {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return err
	}
	seller.ServicesProvided = append(strSlice(data.ServicesProvided), data.OtherServices...)
	seller.ProductionModel = data.ProductionModel
	seller.ProductionCountries = append(strSlice(data.ProductionCountries), data.OtherCountries...)
	seller.ProvidesSamples = data.ProvidesSamples
	seller.SampleDispatchTime = data.SampleDispatchTime
	seller.ProductionTimeline = data.ProductionTimeline
	seller.MinimumOrderQuantity = data.MinimumOrderQuantity
	seller.LowMoqFlexibility = data.LowMoqFlexibility
	seller.FactoryImages = data.FactoryImages
	return s.save(ctx, seller)
}

func (s *service) GetComplianceCredentials(ctx context.Context, userID uuid.UUID) (*onboarding.ComplianceCredentials, error) {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &onboarding.ComplianceCredentials{
		BusinessRegistration:  strSlice(seller.BusinessRegistration),
		CertificationTypes:    strSlice(seller.CertificationTypes),
		OtherCertifications:   []string{},
		Certifications:        strSlice(seller.Certificates),
		CertificationPreviews: []onboarding.FilePreview{},
		ClientLogos:           strSlice(seller.ClientLogos),
		ClientLogoPreviews:    []onboarding.FilePreview{},
		NotableClients:        strSlice(seller.NotableClients),
	}, nil
}

func (s *service) UpdateComplianceCredentials(ctx context.Context, userID uuid.UUID, data *onboarding.ComplianceCredentials) error {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return err
	}
	seller.BusinessRegistration = data.BusinessRegistration
	seller.CertificationTypes = append(strSlice(data.CertificationTypes), data.OtherCertifications...)
	seller.Certificates = data.Certifications
	seller.ClientLogos = data.ClientLogos
	seller.NotableClients = data.NotableClients
	return s.save(ctx, seller)
}

func (s *service) GetBrandPresence(ctx context.Context, userID uuid.UUID) (*onboarding.BrandPresence, error) {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &onboarding.BrandPresence{
		ProjectImages:        strSlice(seller.ProjectImages),
		ProjectImagePreviews: []onboarding.FilePreview{},
		BrandVideo:           seller.BrandVideo,
		SocialMediaLinks:     seller.SocialMediaLinks,
		AdditionalNotes:      seller.AdditionalNotes,
	}, nil
}

func (s *service) UpdateBrandPresence(ctx context.Context, userID uuid.UUID, data *onboarding.BrandPresence) error {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return err
	}
	seller.ProjectImages = data.ProjectImages
	seller.BrandVideo = data.BrandVideo
	seller.SocialMediaLinks = data.SocialMediaLinks
	seller.AdditionalNotes = data.AdditionalNotes
	return s.save(ctx, seller)
}

func (s *service) GetProfileSummary(ctx context.Context, userID uuid.UUID) (*onboarding.ProfileSummary, error) {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	pending := pendingSteps(seller)
	return &onboarding.ProfileSummary{
		BusinessName:        seller.BusinessName,
		ContactEmail:        seller.ContactEmail,
		PendingSteps:        pending,
		ApprovalRequested:   seller.ApprovalRequested,
		ApprovalRequestedAt: seller.ApprovalRequestedAt,
		IsApproved:          seller.Approved,
	}, nil
}

func (s *service) PendingStepNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	return pendingSteps(seller), nil
}

func (s *service) RequestApproval(ctx context.Context, userID uuid.UUID) error {
	seller, err := s.ensure(ctx, userID)
	if err != nil {
		return err
	}
	if pending := pendingSteps(seller); len(pending) > 0 {
		return fmt.Errorf("profile incomplete, pending steps: %v", pending)
	}
	now := time.Now()
	seller.ApprovalRequested = true
	seller.ApprovalRequestedAt = &now
	if err := s.save(ctx, seller); err != nil {
		return err
	}
	if s.announcer != nil {
		s.announcer.AnnounceApprovalRequest(ctx, userID, seller.BusinessName, seller.ContactEmail, s.reviewerPhone)
	}
	return nil
}

// DeleteProfile removes the seller row and its search document.
func (s *service) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	seller, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	if s.indexer != nil {
		if err := s.indexer.DeleteSeller(ctx, seller.ID.String()); err != nil {
			s.logger.Warn("failed to remove seller from search index",
				zap.String("seller_id", seller.ID.String()),
				zap.Error(err))
		}
	}
	return nil
}

// ReindexAll pushes every stored profile into the search index. Run at
// startup so a rebuilt index catches up with the database.
func (s *service) ReindexAll(ctx context.Context) error {
	if s.indexer == nil {
		return nil
	}
	sellers, err := s.repo.List(ctx, false)
	if err != nil {
		return err
	}
	for i := range sellers {
		if err := s.indexer.IndexSeller(ctx, &sellers[i]); err != nil {
			return fmt.Errorf("failed to reindex seller %s: %w", sellers[i].ID, err)
		}
	}
	return nil
}

// pendingSteps lists the sections that still read as empty. final-review is
// never pending; it only aggregates the others.
func pendingSteps(seller *Seller) []string {
	pending := []string{}
	if seller.BusinessName == "" && len(seller.BusinessTypes) == 0 && len(seller.BusinessCategories) == 0 {
		pending = append(pending, string(onboarding.SectionBusinessInfo))
	}
	if len(seller.Objectives) == 0 && len(seller.Challenges) == 0 && len(seller.Metrics) == 0 {
		pending = append(pending, string(onboarding.SectionGoalsMetrics))
	}
	if seller.TeamSize == "" && seller.AnnualRevenue == "" && seller.YearFounded == nil {
		pending = append(pending, string(onboarding.SectionBusinessOverview))
	}
	if len(seller.ServicesProvided) == 0 && seller.ProductionModel == "" {
		pending = append(pending, string(onboarding.SectionCapabilitiesOperations))
	}
	if len(seller.BusinessRegistration) == 0 && len(seller.Certificates) == 0 && len(seller.CertificationTypes) == 0 {
		pending = append(pending, string(onboarding.SectionComplianceCredentials))
	}
	if len(seller.ProjectImages) == 0 && seller.BrandVideo == "" && seller.SocialMediaLinks == "" {
		pending = append(pending, string(onboarding.SectionBrandPresence))
	}
	return pending
}

// strSlice normalizes a possibly-nil array column to an empty slice so
// section payloads always serialize arrays, never null.
func strSlice(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
