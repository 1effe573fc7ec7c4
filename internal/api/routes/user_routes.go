package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the user directory and profile routes.
// Every route requires an authenticated caller.
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface, requireAuth gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("", userHandler.GetUsers)
		users.GET("/me", userHandler.GetMe)
		users.GET("/:id", userHandler.GetUserByID)
		users.GET("/:id/profile", userHandler.GetUserProfile) // Owner only
	}

	profile := rg.Group("/profile")
	profile.Use(requireAuth)
	{
		profile.GET("", userHandler.GetMyProfile)
		profile.PATCH("", userHandler.UpdateMyProfile)
	}
}
