package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers job category routes. Reads are public;
// writes are admin only, enforced by the policy.
func RegisterCategoryRoutes(rg *gin.RouterGroup, categoryHandler handlers.CategoryHandlerInterface) {
	categories := rg.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.POST("", categoryHandler.CreateCategory)
		categories.GET("/:id", categoryHandler.GetCategoryByID)
		categories.PUT("/:id", categoryHandler.UpdateCategory)
		categories.DELETE("/:id", categoryHandler.DeleteCategory)
	}
}
