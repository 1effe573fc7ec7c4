package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// AuthLimits are the per-endpoint rate limiters for unauthenticated auth calls.
type AuthLimits struct {
	Register gin.HandlerFunc
	Login    gin.HandlerFunc
}

// RegisterAuthRoutes registers the token endpoints. They are public.
func RegisterAuthRoutes(rg *gin.RouterGroup, authHandler handlers.AuthHandlerInterface, limits AuthLimits) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", withLimit(limits.Register, authHandler.Register)...)
		auth.POST("/login", withLimit(limits.Login, authHandler.Login)...)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/verify", authHandler.Verify)
		auth.POST("/logout", authHandler.Logout)
	}
}

func withLimit(limit gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	if limit == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{limit, handler}
}
