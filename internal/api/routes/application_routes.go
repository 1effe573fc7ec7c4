package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers job application routes. All of them
// need an authenticated caller; what each caller sees is decided by the policy.
func RegisterApplicationRoutes(rg *gin.RouterGroup, applicationHandler handlers.ApplicationHandlerInterface, requireAuth gin.HandlerFunc) {
	rg.POST("/jobs/:id/apply", requireAuth, applicationHandler.ApplyToJob)

	applications := rg.Group("/applications")
	applications.Use(requireAuth)
	{
		applications.GET("", applicationHandler.ListApplications)
		applications.GET("/:id", applicationHandler.GetApplicationByID)
		applications.PATCH("/:id/status", applicationHandler.UpdateApplicationStatus)
	}
}
