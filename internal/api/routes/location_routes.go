package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterLocationRoutes registers the country, state and city routes under /locations.
func RegisterLocationRoutes(rg *gin.RouterGroup, h handlers.LocationHandlerInterface) {
	locations := rg.Group("/locations")

	countries := locations.Group("/countries")
	{
		countries.GET("", h.ListCountries)
		countries.POST("", h.CreateCountry)
		countries.GET("/:id", h.GetCountry)
		countries.PUT("/:id", h.UpdateCountry)
		countries.DELETE("/:id", h.DeleteCountry)
	}

	states := locations.Group("/states")
	{
		states.GET("", h.ListStates)
		states.POST("", h.CreateState)
		states.GET("/:id", h.GetState)
		states.PUT("/:id", h.UpdateState)
		states.DELETE("/:id", h.DeleteState)
	}

	cities := locations.Group("/cities")
	{
		cities.GET("", h.ListCities)
		cities.POST("", h.CreateCity)
		cities.GET("/:id", h.GetCity)
		cities.PUT("/:id", h.UpdateCity)
		cities.DELETE("/:id", h.DeleteCity)
	}
}
