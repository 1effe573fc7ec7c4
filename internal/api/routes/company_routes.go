package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterCompanyRoutes(rg *gin.RouterGroup, companyHandler handlers.CompanyHandlerInterface) {
	companies := rg.Group("/companies")
	{
		companies.GET("", companyHandler.ListCompanies)
		companies.POST("", companyHandler.CreateCompany)
		companies.GET("/:id", companyHandler.GetCompanyByID)
		companies.PUT("/:id", companyHandler.UpdateCompany)
		companies.DELETE("/:id", companyHandler.DeleteCompany)
	}
}
