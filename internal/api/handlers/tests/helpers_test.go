package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	anonymous  = policy.Anonymous()
	userActor  = policy.NewActor(uuid.MustParse("11111111-1111-1111-1111-111111111111"), models.RoleUser)
	adminActor = policy.NewActor(uuid.MustParse("22222222-2222-2222-2222-222222222222"), models.RoleAdmin)
)

// newRouter returns an engine where every request runs as actor.
func newRouter(actor policy.Actor) *gin.Engine {
	router := gin.New()
	if actor.Authenticated {
		router.Use(func(c *gin.Context) {
			middleware.SetActor(c, actor)
			c.Next()
		})
	}
	return router
}

func doRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func ptr[T any](v T) *T {
	return &v
}
