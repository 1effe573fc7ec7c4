package handlers

import (
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
)

// authorizeRequest checks the kind-level rule before the body is validated,
// so a caller without permission gets 401/403 rather than 400. The service
// repeats the check.
func authorizeRequest(c *gin.Context, action policy.Action, resource policy.Resource, operation string) (policy.Actor, bool) {
	actor := middleware.ActorFromContext(c)
	if !policy.Can(actor, action, resource) {
		respondError(c, services.ErrUnauthorized, operation)
		return actor, false
	}
	return actor, true
}
