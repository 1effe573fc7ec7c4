// Package mocks holds testify mocks for the storage and service interfaces.
package mocks

import (
	"context"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ret returns args[i] as T, or T's zero value when the expectation returned nil.
func ret[T any](args mock.Arguments, i int) T {
	if v, ok := args.Get(i).(T); ok {
		return v
	}
	var zero T
	return zero
}

// MockStore implements storage.Store. RunInTx runs fn against the same
// mock, so repository expectations apply inside and outside transactions.
type MockStore struct {
	UserRepo        *MockUserRepository
	ProfileRepo     *MockProfileRepository
	CategoryRepo    *MockCategoryRepository
	JobRepo         *MockJobRepository
	ApplicationRepo *MockApplicationRepository
	CompanyRepo     *MockCompanyRepository
	LocationRepo    *MockLocationRepository

	// Transactions counts RunInTx calls.
	Transactions int
}

func NewMockStore() *MockStore {
	return &MockStore{
		UserRepo:        new(MockUserRepository),
		ProfileRepo:     new(MockProfileRepository),
		CategoryRepo:    new(MockCategoryRepository),
		JobRepo:         new(MockJobRepository),
		ApplicationRepo: new(MockApplicationRepository),
		CompanyRepo:     new(MockCompanyRepository),
		LocationRepo:    new(MockLocationRepository),
	}
}

var _ storage.Store = (*MockStore)(nil)

func (m *MockStore) Users() storage.UserRepository               { return m.UserRepo }
func (m *MockStore) Profiles() storage.ProfileRepository         { return m.ProfileRepo }
func (m *MockStore) Categories() storage.CategoryRepository      { return m.CategoryRepo }
func (m *MockStore) Jobs() storage.JobRepository                 { return m.JobRepo }
func (m *MockStore) Applications() storage.ApplicationRepository { return m.ApplicationRepo }
func (m *MockStore) Companies() storage.CompanyRepository        { return m.CompanyRepo }
func (m *MockStore) Locations() storage.LocationRepository       { return m.LocationRepo }

func (m *MockStore) RunInTx(ctx context.Context, fn func(tx storage.Store) error) error {
	m.Transactions++
	return fn(m)
}

// AssertExpectations checks every repository mock.
func (m *MockStore) AssertExpectations(t mock.TestingT) bool {
	ok := m.UserRepo.AssertExpectations(t)
	ok = m.ProfileRepo.AssertExpectations(t) && ok
	ok = m.CategoryRepo.AssertExpectations(t) && ok
	ok = m.JobRepo.AssertExpectations(t) && ok
	ok = m.ApplicationRepo.AssertExpectations(t) && ok
	ok = m.CompanyRepo.AssertExpectations(t) && ok
	ok = m.LocationRepo.AssertExpectations(t) && ok
	return ok
}

// --- Users ---

type MockUserRepository struct {
	mock.Mock
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	return ret[*models.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	return ret[*models.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	return ret[*models.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, req *dto.ListUsersRequest) ([]models.User, error) {
	args := m.Called(ctx, req)
	return ret[[]models.User](args, 0), args.Error(1)
}

// --- Profiles ---

type MockProfileRepository struct {
	mock.Mock
}

var _ storage.ProfileRepository = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) Create(ctx context.Context, req *dto.CreateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, req)
	return ret[*models.Profile](args, 0), args.Error(1)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	return ret[*models.Profile](args, 0), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, req)
	return ret[*models.Profile](args, 0), args.Error(1)
}

// --- Categories ---

type MockCategoryRepository struct {
	mock.Mock
}

var _ storage.CategoryRepository = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) Create(ctx context.Context, name, slug string) (*models.JobCategory, error) {
	args := m.Called(ctx, name, slug)
	return ret[*models.JobCategory](args, 0), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, req *dto.GetCategoryByIDRequest) (*models.JobCategory, error) {
	args := m.Called(ctx, req)
	return ret[*models.JobCategory](args, 0), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, req *dto.ListCategoriesRequest) ([]models.JobCategory, error) {
	args := m.Called(ctx, req)
	return ret[[]models.JobCategory](args, 0), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.JobCategory, error) {
	args := m.Called(ctx, req)
	return ret[*models.JobCategory](args, 0), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, req *dto.DeleteCategoryRequest) error {
	return m.Called(ctx, req).Error(0)
}

// --- Jobs ---

type MockJobRepository struct {
	mock.Mock
}

var _ storage.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	return ret[*models.Job](args, 0), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	return ret[*models.Job](args, 0), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	return ret[[]models.Job](args, 0), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	return ret[*models.Job](args, 0), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	return m.Called(ctx, req).Error(0)
}

// --- Applications ---

type MockApplicationRepository struct {
	mock.Mock
}

var _ storage.ApplicationRepository = (*MockApplicationRepository)(nil)

func (m *MockApplicationRepository) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	return ret[*models.Application](args, 0), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.ApplicationDetail, error) {
	args := m.Called(ctx, req)
	return ret[*models.ApplicationDetail](args, 0), args.Error(1)
}

func (m *MockApplicationRepository) ExistsForApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	args := m.Called(ctx, jobID, applicantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]models.ApplicationDetail, error) {
	args := m.Called(ctx, req)
	return ret[[]models.ApplicationDetail](args, 0), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	return ret[*models.Application](args, 0), args.Error(1)
}

// --- Companies ---

type MockCompanyRepository struct {
	mock.Mock
}

var _ storage.CompanyRepository = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	return ret[*models.Company](args, 0), args.Error(1)
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	return ret[*models.Company](args, 0), args.Error(1)
}

func (m *MockCompanyRepository) List(ctx context.Context, req *dto.ListCompaniesRequest) ([]models.Company, error) {
	args := m.Called(ctx, req)
	return ret[[]models.Company](args, 0), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	return ret[*models.Company](args, 0), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, req *dto.DeleteCompanyRequest) error {
	return m.Called(ctx, req).Error(0)
}

// --- Locations ---

type MockLocationRepository struct {
	mock.Mock
}

var _ storage.LocationRepository = (*MockLocationRepository)(nil)

func (m *MockLocationRepository) CreateCountry(ctx context.Context, req *dto.CreateCountryRequest) (*models.Country, error) {
	args := m.Called(ctx, req)
	return ret[*models.Country](args, 0), args.Error(1)
}

func (m *MockLocationRepository) GetCountry(ctx context.Context, req *dto.LocationIDRequest) (*models.Country, error) {
	args := m.Called(ctx, req)
	return ret[*models.Country](args, 0), args.Error(1)
}

func (m *MockLocationRepository) ListCountries(ctx context.Context, req *dto.ListCountriesRequest) ([]models.Country, error) {
	args := m.Called(ctx, req)
	return ret[[]models.Country](args, 0), args.Error(1)
}

func (m *MockLocationRepository) UpdateCountry(ctx context.Context, req *dto.UpdateCountryRequest) (*models.Country, error) {
	args := m.Called(ctx, req)
	return ret[*models.Country](args, 0), args.Error(1)
}

func (m *MockLocationRepository) DeleteCountry(ctx context.Context, req *dto.LocationIDRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockLocationRepository) CreateState(ctx context.Context, req *dto.CreateStateRequest) (*models.State, error) {
	args := m.Called(ctx, req)
	return ret[*models.State](args, 0), args.Error(1)
}

func (m *MockLocationRepository) GetState(ctx context.Context, req *dto.LocationIDRequest) (*models.State, error) {
	args := m.Called(ctx, req)
	return ret[*models.State](args, 0), args.Error(1)
}

func (m *MockLocationRepository) ListStates(ctx context.Context, req *dto.ListStatesRequest) ([]models.State, error) {
	args := m.Called(ctx, req)
	return ret[[]models.State](args, 0), args.Error(1)
}

func (m *MockLocationRepository) UpdateState(ctx context.Context, req *dto.UpdateStateRequest) (*models.State, error) {
	args := m.Called(ctx, req)
	return ret[*models.State](args, 0), args.Error(1)
}

func (m *MockLocationRepository) DeleteState(ctx context.Context, req *dto.LocationIDRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockLocationRepository) CreateCity(ctx context.Context, req *dto.CreateCityRequest) (*models.City, error) {
	args := m.Called(ctx, req)
	return ret[*models.City](args, 0), args.Error(1)
}

func (m *MockLocationRepository) GetCity(ctx context.Context, req *dto.LocationIDRequest) (*models.City, error) {
	args := m.Called(ctx, req)
	return ret[*models.City](args, 0), args.Error(1)
}

func (m *MockLocationRepository) ListCities(ctx context.Context, req *dto.ListCitiesRequest) ([]models.City, error) {
	args := m.Called(ctx, req)
	return ret[[]models.City](args, 0), args.Error(1)
}

func (m *MockLocationRepository) UpdateCity(ctx context.Context, req *dto.UpdateCityRequest) (*models.City, error) {
	args := m.Called(ctx, req)
	return ret[*models.City](args, 0), args.Error(1)
}

func (m *MockLocationRepository) DeleteCity(ctx context.Context, req *dto.LocationIDRequest) error {
	return m.Called(ctx, req).Error(0)
}

// --- Redis-backed stores ---

type MockTokenStore struct {
	mock.Mock
}

var _ storage.TokenStore = (*MockTokenStore)(nil)

func (m *MockTokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, userID, tokenID, ttl).Error(0)
}

func (m *MockTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

type MockRateLimiter struct {
	mock.Mock
}

var _ storage.RateLimiter = (*MockRateLimiter)(nil)

func (m *MockRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), ret[time.Duration](args, 1), args.Error(2)
}
