package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses. A policy denial is 401
// for anonymous callers and 403 for authenticated ones.
func respondError(c *gin.Context, err error, operation string) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		if middleware.ActorFromContext(c).Authenticated {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		} else {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided"})
		}
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalid or expired"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Error %s: %v", operation, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed " + operation})
	}
}
