package seller

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"kollabee/seller-portal/seller-portal-backend/internal/onboarding"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Seller, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Seller), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, seller *Seller) error {
	args := m.Called(ctx, seller)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, seller *Seller) error {
	args := m.Called(ctx, seller)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, approvedOnly bool) ([]Seller, error) {
	args := m.Called(ctx, approvedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Seller), args.Error(1)
}

type MockIndexer struct {
	mock.Mock
}

func (m *MockIndexer) IndexSeller(ctx context.Context, seller *Seller) error {
	args := m.Called(ctx, seller)
	return args.Error(0)
}

func (m *MockIndexer) DeleteSeller(ctx context.Context, sellerID string) error {
	args := m.Called(ctx, sellerID)
	return args.Error(0)
}

func TestGetBusinessInfoCreatesProfileOnFirstAccess(t *testing.T) {
	repo := new(MockRepository)
	userID := uuid.New()
	repo.On("GetByUserID", mock.Anything, userID).Return(nil, ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*seller.Seller")).Return(nil)

	svc := NewService(repo, nil, nil, "", zap.NewNop())
	info, err := svc.GetBusinessInfo(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, "", info.BusinessName)
	assert.Equal(t, []string{}, info.BusinessTypes)
	repo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*seller.Seller"))
}

func TestUpdateBusinessInfoPersistsAndIndexes(t *testing.T) {
	repo := new(MockRepository)
	indexer := new(MockIndexer)
	userID := uuid.New()
	row := &Seller{UserID: userID}
	repo.On("GetByUserID", mock.Anything, userID).Return(row, nil)
	repo.On("Update", mock.Anything, row).Return(nil)
	indexer.On("IndexSeller", mock.Anything, row).Return(nil)

	svc := NewService(repo, indexer, nil, "", zap.NewNop())
	err := svc.UpdateBusinessInfo(context.Background(), userID, &onboarding.BusinessInfo{
		BusinessName:  "Acme Textiles",
		BusinessTypes: []string{"Manufacturer"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Acme Textiles", row.BusinessName)
	assert.Equal(t, []string{"Manufacturer"}, []string(row.BusinessTypes))
	indexer.AssertCalled(t, "IndexSeller", mock.Anything, row)
}

func TestUpdateSurvivesIndexerFailure(t *testing.T) {
	repo := new(MockRepository)
	indexer := new(MockIndexer)
	userID := uuid.New()
	row := &Seller{UserID: userID}
	repo.On("GetByUserID", mock.Anything, userID).Return(row, nil)
	repo.On("Update", mock.Anything, row).Return(nil)
	indexer.On("IndexSeller", mock.Anything, row).Return(errors.New("es down"))

	svc := NewService(repo, indexer, nil, "", zap.NewNop())
	err := svc.UpdateGoalsMetrics(context.Background(), userID, &onboarding.GoalsMetrics{
		SelectedObjectives: []string{"expand"},
	})

	assert.NoError(t, err)
}

func TestBusinessOverviewMergesOtherEntries(t *testing.T) {
	repo := new(MockRepository)
	userID := uuid.New()
	row := &Seller{UserID: userID}
	repo.On("GetByUserID", mock.Anything, userID).Return(row, nil)
	repo.On("Update", mock.Anything, row).Return(nil)

	svc := NewService(repo, nil, nil, "", zap.NewNop())
	err := svc.UpdateBusinessOverview(context.Background(), userID, &onboarding.BusinessOverview{
		LanguagesSpoken:       []string{"English"},
		OtherLanguageSelected: true,
		OtherLanguages:        []string{"Swahili"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"English", "Swahili"}, []string(row.LanguagesSpoken))
}

func TestPendingStepsShrinkAsSectionsFill(t *testing.T) {
	row := &Seller{}
	assert.Len(t, pendingSteps(row), 6)

	row.BusinessName = "Acme"
	row.Objectives = []string{"grow"}
	assert.Len(t, pendingSteps(row), 4)

	year := 2019
	row.YearFounded = &year
	row.ProductionModel = "white-label"
	row.Certificates = []string{"https://cdn/iso9001.pdf"}
	row.SocialMediaLinks = "https://instagram.com/acme"
	assert.Empty(t, pendingSteps(row))
}

func TestRequestApprovalRejectsIncompleteProfile(t *testing.T) {
	repo := new(MockRepository)
	userID := uuid.New()
	repo.On("GetByUserID", mock.Anything, userID).Return(&Seller{UserID: userID}, nil)

	svc := NewService(repo, nil, nil, "", zap.NewNop())
	err := svc.RequestApproval(context.Background(), userID)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRequestApprovalStampsCompleteProfile(t *testing.T) {
	repo := new(MockRepository)
	userID := uuid.New()
	year := 2020
	row := &Seller{
		UserID:           userID,
		BusinessName:     "Acme",
		Objectives:       []string{"grow"},
		YearFounded:      &year,
		ProductionModel:  "in-house",
		Certificates:     []string{"https://cdn/cert.pdf"},
		SocialMediaLinks: "https://acme.example",
	}
	repo.On("GetByUserID", mock.Anything, userID).Return(row, nil)
	repo.On("Update", mock.Anything, row).Return(nil)

	announcer := &recordingAnnouncer{}
	svc := NewService(repo, nil, announcer, "+15550100", zap.NewNop())
	err := svc.RequestApproval(context.Background(), userID)

	assert.NoError(t, err)
	assert.True(t, row.ApprovalRequested)
	assert.NotNil(t, row.ApprovalRequestedAt)
	assert.True(t, announcer.called)
	assert.Equal(t, "Acme", announcer.businessName)
	assert.Equal(t, "+15550100", announcer.reviewerPhone)
}

func TestDeleteProfileRemovesRowAndIndexDocument(t *testing.T) {
	repo := new(MockRepository)
	indexer := new(MockIndexer)
	userID := uuid.New()
	row := &Seller{ID: uuid.New(), UserID: userID}
	repo.On("GetByUserID", mock.Anything, userID).Return(row, nil)
	repo.On("Delete", mock.Anything, userID).Return(nil)
	indexer.On("DeleteSeller", mock.Anything, row.ID.String()).Return(nil)

	svc := NewService(repo, indexer, nil, "", zap.NewNop())
	err := svc.DeleteProfile(context.Background(), userID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	indexer.AssertExpectations(t)
}

func TestDeleteProfileSurvivesDeindexFailure(t *testing.T) {
	repo := new(MockRepository)
	indexer := new(MockIndexer)
	userID := uuid.New()
	row := &Seller{ID: uuid.New(), UserID: userID}
	repo.On("GetByUserID", mock.Anything, userID).Return(row, nil)
	repo.On("Delete", mock.Anything, userID).Return(nil)
	indexer.On("DeleteSeller", mock.Anything, row.ID.String()).Return(errors.New("es down"))

	svc := NewService(repo, indexer, nil, "", zap.NewNop())
	assert.NoError(t, svc.DeleteProfile(context.Background(), userID))
}

func TestDeleteProfileMissingRow(t *testing.T) {
	repo := new(MockRepository)
	userID := uuid.New()
	repo.On("GetByUserID", mock.Anything, userID).Return(nil, ErrNotFound)

	svc := NewService(repo, nil, nil, "", zap.NewNop())
	err := svc.DeleteProfile(context.Background(), userID)

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestReindexAllPushesEveryProfile(t *testing.T) {
	repo := new(MockRepository)
	indexer := new(MockIndexer)
	rows := []Seller{{ID: uuid.New()}, {ID: uuid.New()}}
	repo.On("List", mock.Anything, false).Return(rows, nil)
	indexer.On("IndexSeller", mock.Anything, mock.AnythingOfType("*seller.Seller")).Return(nil).Twice()

	svc := NewService(repo, indexer, nil, "", zap.NewNop())
	err := svc.ReindexAll(context.Background())

	assert.NoError(t, err)
	indexer.AssertNumberOfCalls(t, "IndexSeller", 2)
}

func TestReindexAllWithoutIndexerIsNoOp(t *testing.T) {
	repo := new(MockRepository)

	svc := NewService(repo, nil, nil, "", zap.NewNop())
	assert.NoError(t, svc.ReindexAll(context.Background()))
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

type recordingAnnouncer struct {
	called        bool
	businessName  string
	reviewerPhone string
}

func (a *recordingAnnouncer) AnnounceApprovalRequest(_ context.Context, _ uuid.UUID, businessName, _, reviewerPhone string) {
	a.called = true
	a.businessName = businessName
	a.reviewerPhone = reviewerPhone
}
