package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/campusconnect/backend/internal/service"
)

type stubSessions map[string]service.Identity

func (s stubSessions) ValidateSession(_ context.Context, token string) (service.Identity, error) {
	id, ok := s[token]
	if !ok {
		return service.Identity{}, service.ErrInvalidSession
	}
	return id, nil
}

type brokenSessions struct{}

func (brokenSessions) ValidateSession(context.Context, string) (service.Identity, error) {
	return service.Identity{}, errors.New("redis down")
}

func gatedRouter(v SessionValidator) *gin.Engine {
	r := gin.New()
	r.Use(LoadSession(v, zerolog.Nop()))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetIdentity(c).StudentID)
	})
	r.GET("/my-courses", RequireStudent("Please log in to view your courses."), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin-dashboard", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoleGates(t *testing.T) {
	r := gatedRouter(stubSessions{
		"student-token": {TokenID: "t1", StudentID: "S1", StudentName: "Ada"},
		"admin-token":   {TokenID: "t2", IsAdmin: true},
	})

	tests := []struct {
		name     string
		path     string
		token    string
		wantCode int
		wantLoc  string
	}{
		{name: "anonymous student page", path: "/my-courses", wantCode: http.StatusSeeOther, wantLoc: "/login"},
		{name: "student page", path: "/my-courses", token: "student-token", wantCode: http.StatusOK},
		{name: "admin on student page", path: "/my-courses", token: "admin-token", wantCode: http.StatusSeeOther, wantLoc: "/login"},
		{name: "anonymous admin page", path: "/admin-dashboard", wantCode: http.StatusSeeOther, wantLoc: "/admin-login"},
		{name: "student on admin page", path: "/admin-dashboard", token: "student-token", wantCode: http.StatusSeeOther, wantLoc: "/admin-login"},
		{name: "admin page", path: "/admin-dashboard", token: "admin-token", wantCode: http.StatusOK},
		{name: "revoked token", path: "/my-courses", token: "old-token", wantCode: http.StatusSeeOther, wantLoc: "/login"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.path, tt.token)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantLoc != "" {
				assert.Equal(t, tt.wantLoc, w.Header().Get("Location"))
			}
		})
	}
}

func TestLoadSessionClearsBadCookie(t *testing.T) {
	w := get(gatedRouter(stubSessions{}), "/whoami", "forged")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	var cleared bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestLoadSessionStoreFailureIsAnonymous(t *testing.T) {
	w := get(gatedRouter(brokenSessions{}), "/my-courses", "any")
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestLoadSessionStoreFailureKeepsCookie(t *testing.T) {
	w := get(gatedRouter(brokenSessions{}), "/whoami", "still-valid")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	for _, ck := range w.Result().Cookies() {
		assert.NotEqual(t, SessionCookie, ck.Name, "session cookie must survive a store outage")
	}
}
