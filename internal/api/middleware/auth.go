package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"jobboard-api/internal/policy"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	actorCtx            = "actor" // Key to store the resolved policy.Actor in context
)

// Authenticator resolves an access token to an Actor.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (policy.Actor, error)
}

// Authenticate resolves the bearer token, if any, to a policy.Actor stored
// in the context. Requests without a token continue as anonymous; a token
// that is present but invalid is rejected with 401.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			SetActor(c, policy.Anonymous())
			c.Next()
			return
		}

		headerParts := strings.Fields(authHeader)
		if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		actor, err := auth.Authenticate(c.Request.Context(), headerParts[1])
		if err != nil {
			log.Printf("Auth middleware: rejected token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFromContext(c).Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

func SetActor(c *gin.Context, actor policy.Actor) {
	c.Set(actorCtx, actor)
}

// ActorFromContext returns the caller, or an anonymous actor when the
// request never passed through Authenticate.
func ActorFromContext(c *gin.Context) policy.Actor {
	actorAny, exists := c.Get(actorCtx)
	if !exists {
		return policy.Anonymous()
	}
	actor, ok := actorAny.(policy.Actor)
	if !ok {
		return policy.Anonymous()
	}
	return actor
}
