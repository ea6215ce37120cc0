package onboarding

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockClient is a mock implementation of the Client interface.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetBusinessInfo(ctx context.Context) (*BusinessInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BusinessInfo), args.Error(1)
}

func (m *MockClient) GetGoalsMetrics(ctx context.Context) (*GoalsMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GoalsMetrics), args.Error(1)
}

func (m *MockClient) GetBusinessOverview(ctx context.Context) (*BusinessOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BusinessOverview), args.Error(1)
}

func (m *MockClient) GetCapabilitiesOperations(ctx context.Context) (*CapabilitiesOperations, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CapabilitiesOperations), args.Error(1)
}

func (m *MockClient) GetComplianceCredentials(ctx context.Context) (*ComplianceCredentials, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ComplianceCredentials), args.Error(1)
}

func (m *MockClient) GetBrandPresence(ctx context.Context) (*BrandPresence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BrandPresence), args.Error(1)
}

func (m *MockClient) GetProfileSummary(ctx context.Context) (*ProfileSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProfileSummary), args.Error(1)
}

func (m *MockClient) UpdateBusinessInfo(ctx context.Context, data *BusinessInfo) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockClient) UpdateGoalsMetrics(ctx context.Context, data *GoalsMetrics) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockClient) UpdateBusinessOverview(ctx context.Context, data *BusinessOverview) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockClient) UpdateCapabilitiesOperations(ctx context.Context, data *CapabilitiesOperations) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockClient) UpdateComplianceCredentials(ctx context.Context, data *ComplianceCredentials) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockClient) UpdateBrandPresence(ctx context.Context, data *BrandPresence) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

// MockFileStore is a mock implementation of the FileStore interface.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) UploadProductImage(ctx context.Context, file File) (*StoredFile, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StoredFile), args.Error(1)
}

func (m *MockFileStore) UploadProfileImage(ctx context.Context, file File) (*StoredFile, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StoredFile), args.Error(1)
}

func (m *MockFileStore) UploadPDF(ctx context.Context, file File) (*StoredFile, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StoredFile), args.Error(1)
}

// recordingNotifier captures notices for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

type notice struct {
	severity Severity
	message  string
}

func (n *recordingNotifier) Notify(severity Severity, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{severity, message})
}

func (n *recordingNotifier) all() []notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notice(nil), n.notices...)
}

func (n *recordingNotifier) last() (notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notices) == 0 {
		return notice{}, false
	}
	return n.notices[len(n.notices)-1], true
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
