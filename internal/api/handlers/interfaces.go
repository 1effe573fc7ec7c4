package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Verify(c *gin.Context)
	Logout(c *gin.Context)
}

// UserHandlerInterface defines the methods needed by the user and profile routes.
type UserHandlerInterface interface {
	GetMe(c *gin.Context)
	GetUsers(c *gin.Context)
	GetUserByID(c *gin.Context)
	GetUserProfile(c *gin.Context)
	GetMyProfile(c *gin.Context)
	UpdateMyProfile(c *gin.Context)
}

type CategoryHandlerInterface interface {
	CreateCategory(c *gin.Context)
	ListCategories(c *gin.Context)
	GetCategoryByID(c *gin.Context)
	UpdateCategory(c *gin.Context)
	DeleteCategory(c *gin.Context)
}

type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

type ApplicationHandlerInterface interface {
	ApplyToJob(c *gin.Context)
	ListApplications(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	UpdateApplicationStatus(c *gin.Context)
}

type CompanyHandlerInterface interface {
	CreateCompany(c *gin.Context)
	ListCompanies(c *gin.Context)
	GetCompanyByID(c *gin.Context)
	UpdateCompany(c *gin.Context)
	DeleteCompany(c *gin.Context)
}

type LocationHandlerInterface interface {
	CreateCountry(c *gin.Context)
	ListCountries(c *gin.Context)
	GetCountry(c *gin.Context)
	UpdateCountry(c *gin.Context)
	DeleteCountry(c *gin.Context)

	CreateState(c *gin.Context)
	ListStates(c *gin.Context)
	GetState(c *gin.Context)
	UpdateState(c *gin.Context)
	DeleteState(c *gin.Context)

	CreateCity(c *gin.Context)
	ListCities(c *gin.Context)
	GetCity(c *gin.Context)
	UpdateCity(c *gin.Context)
	DeleteCity(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ AuthHandlerInterface        = (*AuthHandler)(nil)
	_ UserHandlerInterface        = (*UserHandler)(nil)
	_ CategoryHandlerInterface    = (*CategoryHandler)(nil)
	_ JobHandlerInterface         = (*JobHandler)(nil)
	_ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
	_ CompanyHandlerInterface     = (*CompanyHandler)(nil)
	_ LocationHandlerInterface    = (*LocationHandler)(nil)
)
