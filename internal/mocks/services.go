package mocks

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

var _ services.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *dto.TokenPair, error) {
	args := m.Called(ctx, req)
	return ret[*models.User](args, 0), ret[*dto.TokenPair](args, 1), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenPair, error) {
	args := m.Called(ctx, req)
	return ret[*models.User](args, 0), ret[*dto.TokenPair](args, 1), args.Error(2)
}

func (m *MockUserService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error) {
	args := m.Called(ctx, req)
	return ret[*dto.TokenPair](args, 0), args.Error(1)
}

func (m *MockUserService) VerifyToken(ctx context.Context, req *dto.VerifyTokenRequest) (*dto.VerifyTokenResponse, error) {
	args := m.Called(ctx, req)
	return ret[*dto.VerifyTokenResponse](args, 0), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockUserService) Authenticate(ctx context.Context, accessToken string) (policy.Actor, error) {
	args := m.Called(ctx, accessToken)
	return ret[policy.Actor](args, 0), args.Error(1)
}

func (m *MockUserService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	return ret[*models.User](args, 0), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, actor policy.Actor) (*models.User, error) {
	args := m.Called(ctx, actor)
	return ret[*models.User](args, 0), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, actor policy.Actor, req *dto.GetUserByIDRequest) (*models.User, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.User](args, 0), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, actor policy.Actor, req *dto.ListUsersRequest) ([]models.User, error) {
	args := m.Called(ctx, actor, req)
	return ret[[]models.User](args, 0), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

var _ services.ProfileService = (*MockProfileService)(nil)

func (m *MockProfileService) Get(ctx context.Context, actor policy.Actor, userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, actor, userID)
	return ret[*models.Profile](args, 0), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, actor policy.Actor, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.Profile](args, 0), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

var _ services.CategoryService = (*MockCategoryService)(nil)

func (m *MockCategoryService) CreateCategory(ctx context.Context, actor policy.Actor, req *dto.CreateCategoryRequest) (*models.JobCategory, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.JobCategory](args, 0), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, actor policy.Actor, req *dto.GetCategoryByIDRequest) (*models.JobCategory, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.JobCategory](args, 0), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, actor policy.Actor, req *dto.ListCategoriesRequest) ([]models.JobCategory, error) {
	args := m.Called(ctx, actor, req)
	return ret[[]models.JobCategory](args, 0), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, actor policy.Actor, req *dto.UpdateCategoryRequest) (*models.JobCategory, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.JobCategory](args, 0), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, actor policy.Actor, req *dto.DeleteCategoryRequest) error {
	return m.Called(ctx, actor, req).Error(0)
}

type MockJobService struct {
	mock.Mock
}

var _ services.JobService = (*MockJobService)(nil)

func (m *MockJobService) CreateJob(ctx context.Context, actor policy.Actor, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.Job](args, 0), args.Error(1)
}

func (m *MockJobService) GetJobByID(ctx context.Context, actor policy.Actor, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.Job](args, 0), args.Error(1)
}

func (m *MockJobService) ListJobs(ctx context.Context, actor policy.Actor, req *dto.ListJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, actor, req)
	return ret[[]models.Job](args, 0), args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, actor policy.Actor, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.Job](args, 0), args.Error(1)
}

func (m *MockJobService) DeleteJob(ctx context.Context, actor policy.Actor, req *dto.DeleteJobRequest) error {
	return m.Called(ctx, actor, req).Error(0)
}

type MockApplicationService struct {
	mock.Mock
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

func (m *MockApplicationService) Submit(ctx context.Context, actor policy.Actor, req *dto.SubmitApplicationRequest) (*models.ApplicationDetail, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.ApplicationDetail](args, 0), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, actor policy.Actor, req *dto.UpdateApplicationStatusRequest) (*models.ApplicationDetail, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.ApplicationDetail](args, 0), args.Error(1)
}

func (m *MockApplicationService) List(ctx context.Context, actor policy.Actor, req *dto.ListApplicationsRequest) ([]models.ApplicationDetail, error) {
	args := m.Called(ctx, actor, req)
	return ret[[]models.ApplicationDetail](args, 0), args.Error(1)
}

func (m *MockApplicationService) Get(ctx context.Context, actor policy.Actor, req *dto.GetApplicationByIDRequest) (*models.ApplicationDetail, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.ApplicationDetail](args, 0), args.Error(1)
}

type MockCompanyService struct {
	mock.Mock
}

var _ services.CompanyService = (*MockCompanyService)(nil)

func (m *MockCompanyService) CreateCompany(ctx context.Context, actor policy.Actor, req *dto.CreateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.Company](args, 0), args.Error(1)
}

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, actor policy.Actor, req *dto.GetCompanyByIDRequest) (*models.Company, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.Company](args, 0), args.Error(1)
}

func (m *MockCompanyService) ListCompanies(ctx context.Context, actor policy.Actor, req *dto.ListCompaniesRequest) ([]models.Company, error) {
	args := m.Called(ctx, actor, req)
	return ret[[]models.Company](args, 0), args.Error(1)
}

func (m *MockCompanyService) UpdateCompany(ctx context.Context, actor policy.Actor, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.Company](args, 0), args.Error(1)
}

func (m *MockCompanyService) DeleteCompany(ctx context.Context, actor policy.Actor, req *dto.DeleteCompanyRequest) error {
	return m.Called(ctx, actor, req).Error(0)
}

type MockLocationService struct {
	mock.Mock
}

var _ services.LocationService = (*MockLocationService)(nil)

func (m *MockLocationService) CreateCountry(ctx context.Context, actor policy.Actor, req *dto.CreateCountryRequest) (*models.Country, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.Country](args, 0), args.Error(1)
}

func (m *MockLocationService) GetCountry(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) (*models.Country, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.Country](args, 0), args.Error(1)
}

func (m *MockLocationService) ListCountries(ctx context.Context, actor policy.Actor, req *dto.ListCountriesRequest) ([]models.Country, error) {
	args := m.Called(ctx, actor, req)
	return ret[[]models.Country](args, 0), args.Error(1)
}

func (m *MockLocationService) UpdateCountry(ctx context.Context, actor policy.Actor, req *dto.UpdateCountryRequest) (*models.Country, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.Country](args, 0), args.Error(1)
}

func (m *MockLocationService) DeleteCountry(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) error {
	return m.Called(ctx, actor, req).Error(0)
}

func (m *MockLocationService) CreateState(ctx context.Context, actor policy.Actor, req *dto.CreateStateRequest) (*models.State, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.State](args, 0), args.Error(1)
}

func (m *MockLocationService) GetState(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) (*models.State, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.State](args, 0), args.Error(1)
}

func (m *MockLocationService) ListStates(ctx context.Context, actor policy.Actor, req *dto.ListStatesRequest) ([]models.State, error) {
	args := m.Called(ctx, actor, req)
	return ret[[]models.State](args, 0), args.Error(1)
}

func (m *MockLocationService) UpdateState(ctx context.Context, actor policy.Actor, req *dto.UpdateStateRequest) (*models.State, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.State](args, 0), args.Error(1)
}

func (m *MockLocationService) DeleteState(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) error {
	return m.Called(ctx, actor, req).Error(0)
}

func (m *MockLocationService) CreateCity(ctx context.Context, actor policy.Actor, req *dto.CreateCityRequest) (*models.City, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.City](args, 0), args.Error(1)
}

func (m *MockLocationService) GetCity(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) (*models.City, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.City](args, 0), args.Error(1)
}

func (m *MockLocationService) ListCities(ctx context.Context, actor policy.Actor, req *dto.ListCitiesRequest) ([]models.City, error) {
	args := m.Called(ctx, actor, req)
	return ret[[]models.City](args, 0), args.Error(1)
}

func (m *MockLocationService) UpdateCity(ctx context.Context, actor policy.Actor, req *dto.UpdateCityRequest) (*models.City, error) {
	args := m.Called(ctx, actor, req)
	return ret[*models.City](args, 0), args.Error(1)
}

func (m *MockLocationService) DeleteCity(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) error {
	return m.Called(ctx, actor, req).Error(0)
}
