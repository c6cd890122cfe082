package usecases_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"panchayat.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

func (m *MockUnitOfWork) WithLock(ctx context.Context) context.Context {
	args := m.Called(ctx)
	return args.Get(0).(context.Context)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter entities.UserFilter, limit, offset int) ([]*entities.User, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) SetVerified(ctx context.Context, username string, verified bool) error {
	args := m.Called(ctx, username, verified)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateCitizen(ctx context.Context, citizen *entities.Citizen) error {
	args := m.Called(ctx, citizen)
	return args.Error(0)
}

func (m *MockProfileRepository) CreateAdmin(ctx context.Context, admin *entities.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockProfileRepository) CreateAgency(ctx context.Context, agency *entities.GovernmentAgency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}

func (m *MockProfileRepository) CreateEmployee(ctx context.Context, employee *entities.PanchayatEmployee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockProfileRepository) GetCitizenByID(ctx context.Context, id uint) (*entities.Citizen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Citizen), args.Error(1)
}

func (m *MockProfileRepository) GetCitizenByUsername(ctx context.Context, username string) (*entities.Citizen, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Citizen), args.Error(1)
}

func (m *MockProfileRepository) GetAdminByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockProfileRepository) GetAgencyByID(ctx context.Context, id uint) (*entities.GovernmentAgency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GovernmentAgency), args.Error(1)
}

func (m *MockProfileRepository) GetAgencyByUsername(ctx context.Context, username string) (*entities.GovernmentAgency, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GovernmentAgency), args.Error(1)
}

func (m *MockProfileRepository) GetEmployeeByUsername(ctx context.Context, username string) (*entities.PanchayatEmployee, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PanchayatEmployee), args.Error(1)
}

func (m *MockProfileRepository) UpdateCitizen(ctx context.Context, citizen *entities.Citizen) error {
	args := m.Called(ctx, citizen)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteProfile(ctx context.Context, role entities.UserRole, username string) error {
	args := m.Called(ctx, role, username)
	return args.Error(0)
}

// Mock ActivityLogRepository
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(ctx context.Context, entry *entities.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) ListByUser(ctx context.Context, username string, limit, offset int) ([]*entities.ActivityLog, int, error) {
	args := m.Called(ctx, username, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.ActivityLog), args.Int(1), args.Error(2)
}

// Mock AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *entities.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id uint) (*entities.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.Asset, error) {
	args := m.Called(ctx, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Asset), args.Error(1)
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *entities.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteByCitizen(ctx context.Context, citizenID uint) error {
	args := m.Called(ctx, citizenID)
	return args.Error(0)
}

// Mock FamilyRepository
type MockFamilyRepository struct {
	mock.Mock
}

func (m *MockFamilyRepository) Create(ctx context.Context, family *entities.Family) error {
	args := m.Called(ctx, family)
	return args.Error(0)
}

func (m *MockFamilyRepository) GetByID(ctx context.Context, id uint) (*entities.Family, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Family), args.Error(1)
}

func (m *MockFamilyRepository) ListHeadedBy(ctx context.Context, citizenID uint) ([]*entities.Family, error) {
	args := m.Called(ctx, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Family), args.Error(1)
}

func (m *MockFamilyRepository) ListForMember(ctx context.Context, citizenID uint) ([]*entities.Family, error) {
	args := m.Called(ctx, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Family), args.Error(1)
}

func (m *MockFamilyRepository) GetMember(ctx context.Context, familyID, citizenID uint) (*entities.FamilyMember, error) {
	args := m.Called(ctx, familyID, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FamilyMember), args.Error(1)
}

func (m *MockFamilyRepository) AddMember(ctx context.Context, member *entities.FamilyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockFamilyRepository) RemoveMember(ctx context.Context, familyID, citizenID uint) error {
	args := m.Called(ctx, familyID, citizenID)
	return args.Error(0)
}

func (m *MockFamilyRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFamilyRepository) DeleteForCitizen(ctx context.Context, citizenID uint) error {
	args := m.Called(ctx, citizenID)
	return args.Error(0)
}

// Mock IssueRepository
type MockIssueRepository struct {
	mock.Mock
}

func (m *MockIssueRepository) Create(ctx context.Context, issue *entities.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueRepository) GetByID(ctx context.Context, id uint) (*entities.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Issue), args.Error(1)
}

func (m *MockIssueRepository) ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.Issue, error) {
	args := m.Called(ctx, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Issue), args.Error(1)
}

func (m *MockIssueRepository) List(ctx context.Context, filter entities.IssueFilter, limit, offset int) ([]*entities.Issue, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Issue), args.Int(1), args.Error(2)
}

func (m *MockIssueRepository) UpdateStatus(ctx context.Context, id uint, status entities.IssueStatus, at time.Time) error {
	args := m.Called(ctx, id, status, at)
	return args.Error(0)
}

func (m *MockIssueRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIssueRepository) DeleteByCitizen(ctx context.Context, citizenID uint) error {
	args := m.Called(ctx, citizenID)
	return args.Error(0)
}

// Mock DocumentRepository
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *entities.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) GetByID(ctx context.Context, id uint) (*entities.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.Document, error) {
	args := m.Called(ctx, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Document), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteByCitizen(ctx context.Context, citizenID uint) error {
	args := m.Called(ctx, citizenID)
	return args.Error(0)
}

// Mock FinancialDataRepository
type MockFinancialDataRepository struct {
	mock.Mock
}

func (m *MockFinancialDataRepository) Create(ctx context.Context, data *entities.FinancialData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockFinancialDataRepository) GetByID(ctx context.Context, id uint) (*entities.FinancialData, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FinancialData), args.Error(1)
}

func (m *MockFinancialDataRepository) GetByCitizenYear(ctx context.Context, citizenID uint, year int) (*entities.FinancialData, error) {
	args := m.Called(ctx, citizenID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FinancialData), args.Error(1)
}

func (m *MockFinancialDataRepository) ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.FinancialData, error) {
	args := m.Called(ctx, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FinancialData), args.Error(1)
}

func (m *MockFinancialDataRepository) Update(ctx context.Context, data *entities.FinancialData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockFinancialDataRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFinancialDataRepository) DeleteByCitizen(ctx context.Context, citizenID uint) error {
	args := m.Called(ctx, citizenID)
	return args.Error(0)
}

// Mock WelfareSchemeRepository
type MockWelfareSchemeRepository struct {
	mock.Mock
}

func (m *MockWelfareSchemeRepository) Create(ctx context.Context, scheme *entities.WelfareScheme) error {
	args := m.Called(ctx, scheme)
	return args.Error(0)
}

func (m *MockWelfareSchemeRepository) GetByID(ctx context.Context, id uint) (*entities.WelfareScheme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WelfareScheme), args.Error(1)
}

func (m *MockWelfareSchemeRepository) List(ctx context.Context) ([]*entities.WelfareScheme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WelfareScheme), args.Error(1)
}

func (m *MockWelfareSchemeRepository) ListByAgency(ctx context.Context, agencyID uint) ([]*entities.WelfareScheme, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WelfareScheme), args.Error(1)
}

func (m *MockWelfareSchemeRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWelfareSchemeRepository) DeleteByAgency(ctx context.Context, agencyID uint) error {
	args := m.Called(ctx, agencyID)
	return args.Error(0)
}

// Mock WelfareEnrolRepository
type MockWelfareEnrolRepository struct {
	mock.Mock
}

func (m *MockWelfareEnrolRepository) Create(ctx context.Context, enrol *entities.WelfareEnrol) error {
	args := m.Called(ctx, enrol)
	return args.Error(0)
}

func (m *MockWelfareEnrolRepository) GetByID(ctx context.Context, id uint) (*entities.WelfareEnrol, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WelfareEnrol), args.Error(1)
}

func (m *MockWelfareEnrolRepository) ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.WelfareEnrol, error) {
	args := m.Called(ctx, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WelfareEnrol), args.Error(1)
}

func (m *MockWelfareEnrolRepository) List(ctx context.Context, filter entities.EnrolFilter) ([]*entities.WelfareEnrol, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WelfareEnrol), args.Error(1)
}

func (m *MockWelfareEnrolRepository) CountByScheme(ctx context.Context, schemeID uint) (int64, error) {
	args := m.Called(ctx, schemeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWelfareEnrolRepository) UpdateStatus(ctx context.Context, id uint, status entities.EnrolStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockWelfareEnrolRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWelfareEnrolRepository) DeleteByCitizen(ctx context.Context, citizenID uint) error {
	args := m.Called(ctx, citizenID)
	return args.Error(0)
}

func (m *MockWelfareEnrolRepository) DeleteByAgency(ctx context.Context, agencyID uint) error {
	args := m.Called(ctx, agencyID)
	return args.Error(0)
}

// Mock InfrastructureRepository
type MockInfrastructureRepository struct {
	mock.Mock
}

func (m *MockInfrastructureRepository) Create(ctx context.Context, infra *entities.Infrastructure) error {
	args := m.Called(ctx, infra)
	return args.Error(0)
}

func (m *MockInfrastructureRepository) GetByID(ctx context.Context, id uint) (*entities.Infrastructure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Infrastructure), args.Error(1)
}

func (m *MockInfrastructureRepository) List(ctx context.Context) ([]*entities.Infrastructure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Infrastructure), args.Error(1)
}

func (m *MockInfrastructureRepository) ListByAgency(ctx context.Context, agencyID uint) ([]*entities.Infrastructure, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Infrastructure), args.Error(1)
}

func (m *MockInfrastructureRepository) UpdateActualCost(ctx context.Context, id uint, cost float64) error {
	args := m.Called(ctx, id, cost)
	return args.Error(0)
}

func (m *MockInfrastructureRepository) DeleteByAgency(ctx context.Context, agencyID uint) error {
	args := m.Called(ctx, agencyID)
	return args.Error(0)
}

// Mock EnvironmentalDataRepository
type MockEnvironmentalDataRepository struct {
	mock.Mock
}

func (m *MockEnvironmentalDataRepository) Create(ctx context.Context, data *entities.EnvironmentalData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockEnvironmentalDataRepository) GetByYear(ctx context.Context, year int) (*entities.EnvironmentalData, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EnvironmentalData), args.Error(1)
}

func (m *MockEnvironmentalDataRepository) List(ctx context.Context) ([]*entities.EnvironmentalData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EnvironmentalData), args.Error(1)
}

func (m *MockEnvironmentalDataRepository) Update(ctx context.Context, data *entities.EnvironmentalData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockEnvironmentalDataRepository) Delete(ctx context.Context, year int) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

// Mock AccountNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendAccountVerified(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Mock TokenRevoker
type MockTokenRevoker struct {
	mock.Mock
}

func (m *MockTokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *MockTokenRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}
