package storage

import (
	"context"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

// Store groups the repositories and the unit of work that spans them.
type Store interface {
	Users() UserRepository
	Profiles() ProfileRepository
	Categories() CategoryRepository
	Jobs() JobRepository
	Applications() ApplicationRepository
	Companies() CompanyRepository
	Locations() LocationRepository

	// RunInTx runs fn against a Store bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(tx Store) error) error
}

// UserRepository defines the interface for user data operations. Users are never deleted.
type UserRepository interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
	List(ctx context.Context, req *dto.ListUsersRequest) ([]models.User, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, req *dto.CreateProfileRequest) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, name, slug string) (*models.JobCategory, error)
	GetByID(ctx context.Context, req *dto.GetCategoryByIDRequest) (*models.JobCategory, error)
	List(ctx context.Context, req *dto.ListCategoriesRequest) ([]models.JobCategory, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.JobCategory, error)
	Delete(ctx context.Context, req *dto.DeleteCategoryRequest) error
}

type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.ApplicationDetail, error)
	ExistsForApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	List(ctx context.Context, req *dto.ListApplicationsRequest) ([]models.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

type CompanyRepository interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error)
	List(ctx context.Context, req *dto.ListCompaniesRequest) ([]models.Company, error)
	Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, req *dto.DeleteCompanyRequest) error
}

type LocationRepository interface {
	CreateCountry(ctx context.Context, req *dto.CreateCountryRequest) (*models.Country, error)
	GetCountry(ctx context.Context, req *dto.LocationIDRequest) (*models.Country, error)
	ListCountries(ctx context.Context, req *dto.ListCountriesRequest) ([]models.Country, error)
	UpdateCountry(ctx context.Context, req *dto.UpdateCountryRequest) (*models.Country, error)
	DeleteCountry(ctx context.Context, req *dto.LocationIDRequest) error

	CreateState(ctx context.Context, req *dto.CreateStateRequest) (*models.State, error)
	GetState(ctx context.Context, req *dto.LocationIDRequest) (*models.State, error)
	ListStates(ctx context.Context, req *dto.ListStatesRequest) ([]models.State, error)
	UpdateState(ctx context.Context, req *dto.UpdateStateRequest) (*models.State, error)
	DeleteState(ctx context.Context, req *dto.LocationIDRequest) error

	CreateCity(ctx context.Context, req *dto.CreateCityRequest) (*models.City, error)
	GetCity(ctx context.Context, req *dto.LocationIDRequest) (*models.City, error)
	ListCities(ctx context.Context, req *dto.ListCitiesRequest) ([]models.City, error)
	UpdateCity(ctx context.Context, req *dto.UpdateCityRequest) (*models.City, error)
	DeleteCity(ctx context.Context, req *dto.LocationIDRequest) error
}

// TokenStore tracks refresh tokens that are still allowed to be exchanged.
type TokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	// Revoke reports whether the token was present. Only one caller can ever observe true.
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
}

// RateLimiter counts hits per key inside a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}
