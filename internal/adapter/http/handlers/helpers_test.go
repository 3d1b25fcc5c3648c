package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"order_core/internal/adapter/http/middleware"
	"order_core/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	memberCaller = entities.Caller{ID: "cust-1", Role: entities.RoleMember}
	adminCaller  = entities.Caller{ID: "admin-1", Role: entities.RoleAdmin}
)

// newRouter returns an engine that authenticates every request as caller.
// A zero caller behaves like a guest.
func newRouter(caller entities.Caller) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if caller.ID != "" {
			middleware.WithCaller(c, caller)
		}
		c.Next()
	})
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return out
}
