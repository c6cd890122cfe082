package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/interfaces/http/middleware"
	"panchayat.backend/internal/usecases"
)

var (
	citizenActor  = access.Actor{Username: "alice", Role: entities.RoleCitizen, ProfileID: 1}
	adminActor    = access.Actor{Username: "root", Role: entities.RoleAdmin, ProfileID: 1}
	agencyActor   = access.Actor{Username: "water", Role: entities.RoleGovernmentAgency, ProfileID: 7}
	employeeActor = access.Actor{Username: "ravi", Role: entities.RolePanchayatEmployee, ProfileID: 3}
)

// newRouter returns an engine whose requests carry a session for actor.
func newRouter(actor access.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.SessionKey, &usecases.Session{
			Actor:     actor,
			TokenID:   "jti-" + actor.Username,
			ExpiresAt: time.Now().Add(time.Hour),
		})
		c.Next()
	})
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
