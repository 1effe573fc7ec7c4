package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService covers authentication flows and the user directory.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *dto.TokenPair, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenPair, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error)
	VerifyToken(ctx context.Context, req *dto.VerifyTokenRequest) (*dto.VerifyTokenResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	// Authenticate resolves an access token to the Actor it speaks for.
	Authenticate(ctx context.Context, accessToken string) (policy.Actor, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.User, error)

	Me(ctx context.Context, actor policy.Actor) (*models.User, error)
	GetByID(ctx context.Context, actor policy.Actor, req *dto.GetUserByIDRequest) (*models.User, error)
	List(ctx context.Context, actor policy.Actor, req *dto.ListUsersRequest) ([]models.User, error)
}

// ProfileService reads and edits profiles. Only the owner may do either.
type ProfileService interface {
	Get(ctx context.Context, actor policy.Actor, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, actor policy.Actor, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, actor policy.Actor, req *dto.CreateCategoryRequest) (*models.JobCategory, error)
	GetCategoryByID(ctx context.Context, actor policy.Actor, req *dto.GetCategoryByIDRequest) (*models.JobCategory, error)
	ListCategories(ctx context.Context, actor policy.Actor, req *dto.ListCategoriesRequest) ([]models.JobCategory, error)
	UpdateCategory(ctx context.Context, actor policy.Actor, req *dto.UpdateCategoryRequest) (*models.JobCategory, error)
	DeleteCategory(ctx context.Context, actor policy.Actor, req *dto.DeleteCategoryRequest) error
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	CreateJob(ctx context.Context, actor policy.Actor, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, actor policy.Actor, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListJobs(ctx context.Context, actor policy.Actor, req *dto.ListJobsRequest) ([]models.Job, error)
	UpdateJob(ctx context.Context, actor policy.Actor, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, actor policy.Actor, req *dto.DeleteJobRequest) error
}

// ApplicationService guards application integrity: one application per
// (job, applicant), never from an admin, status changes by admins only.
type ApplicationService interface {
	Submit(ctx context.Context, actor policy.Actor, req *dto.SubmitApplicationRequest) (*models.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, actor policy.Actor, req *dto.UpdateApplicationStatusRequest) (*models.ApplicationDetail, error)
	List(ctx context.Context, actor policy.Actor, req *dto.ListApplicationsRequest) ([]models.ApplicationDetail, error)
	Get(ctx context.Context, actor policy.Actor, req *dto.GetApplicationByIDRequest) (*models.ApplicationDetail, error)
}

type CompanyService interface {
	CreateCompany(ctx context.Context, actor policy.Actor, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetCompanyByID(ctx context.Context, actor policy.Actor, req *dto.GetCompanyByIDRequest) (*models.Company, error)
	ListCompanies(ctx context.Context, actor policy.Actor, req *dto.ListCompaniesRequest) ([]models.Company, error)
	UpdateCompany(ctx context.Context, actor policy.Actor, req *dto.UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, actor policy.Actor, req *dto.DeleteCompanyRequest) error
}

type LocationService interface {
	CreateCountry(ctx context.Context, actor policy.Actor, req *dto.CreateCountryRequest) (*models.Country, error)
	GetCountry(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) (*models.Country, error)
	ListCountries(ctx context.Context, actor policy.Actor, req *dto.ListCountriesRequest) ([]models.Country, error)
	UpdateCountry(ctx context.Context, actor policy.Actor, req *dto.UpdateCountryRequest) (*models.Country, error)
	DeleteCountry(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) error

	CreateState(ctx context.Context, actor policy.Actor, req *dto.CreateStateRequest) (*models.State, error)
	GetState(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) (*models.State, error)
	ListStates(ctx context.Context, actor policy.Actor, req *dto.ListStatesRequest) ([]models.State, error)
	UpdateState(ctx context.Context, actor policy.Actor, req *dto.UpdateStateRequest) (*models.State, error)
	DeleteState(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) error

	CreateCity(ctx context.Context, actor policy.Actor, req *dto.CreateCityRequest) (*models.City, error)
	GetCity(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) (*models.City, error)
	ListCities(ctx context.Context, actor policy.Actor, req *dto.ListCitiesRequest) ([]models.City, error)
	UpdateCity(ctx context.Context, actor policy.Actor, req *dto.UpdateCityRequest) (*models.City, error)
	DeleteCity(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) error
}
