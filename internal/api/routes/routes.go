package routes

import (
	"log"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/app"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// Create handlers
	authHandler := handlers.NewAuthHandler(app.UserService, app.Validator)
	userHandler := handlers.NewUserHandler(app.UserService, app.ProfileService, app.Validator)
	categoryHandler := handlers.NewCategoryHandler(app.CategoryService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator)
	companyHandler := handlers.NewCompanyHandler(app.CompanyService, app.Validator)
	locationHandler := handlers.NewLocationHandler(app.LocationService, app.Validator)

	// --- Middleware ---
	limits := app.Config.RateLimit
	authLimits := AuthLimits{
		Register: middleware.RateLimit(app.RateLimiter, "register", limits.LoginLimit, limits.LoginWindow),
		Login:    middleware.RateLimit(app.RateLimiter, "login", limits.LoginLimit, limits.LoginWindow),
	}
	requireAuth := middleware.RequireAuth()

	// --- Register Resource Routes ---
	// Token endpoints read credentials from the body and skip Authenticate.
	RegisterAuthRoutes(apiV1, authHandler, authLimits)

	resources := apiV1.Group("")
	resources.Use(middleware.Authenticate(app.UserService))
	RegisterUserRoutes(resources, userHandler, requireAuth)
	RegisterCategoryRoutes(resources, categoryHandler)
	RegisterJobRoutes(resources, jobHandler)
	RegisterApplicationRoutes(resources, applicationHandler, requireAuth)
	RegisterCompanyRoutes(resources, companyHandler)
	RegisterLocationRoutes(resources, locationHandler)

	// --- Health Check ---
	router.GET("/health", handlers.NewHealthHandler(app.HealthChecks()).HealthCheck)

	log.Println("API routes registered under /api/v1")
}
