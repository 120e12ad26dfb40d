package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/response"
	"github.com/campusconnect/backend/internal/service"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "cc_session"
	// ContextKeyIdentity is the Gin context key for the caller's identity.
	ContextKeyIdentity = "identity"
)

// SessionValidator resolves a session token to an identity.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (service.Identity, error)
}

// LoadSession attaches the caller's identity to the context. Requests without
// a usable session continue as anonymous. The cookie is cleared only when the
// token itself is rejected; a session store outage keeps it.
func LoadSession(sessions SessionValidator, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		id, err := sessions.ValidateSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidSession) {
				ClearSessionCookie(c)
			} else {
				log.Warn().Err(err).Str("request_id", c.GetString(response.ContextKeyRequestID)).Msg("Session lookup failed")
			}
			c.Next()
			return
		}

		c.Set(ContextKeyIdentity, id)
		c.Next()
	}
}

// GetIdentity returns the identity loaded for this request; anonymous if none.
func GetIdentity(c *gin.Context) service.Identity {
	v, ok := c.Get(ContextKeyIdentity)
	if !ok {
		return service.Identity{}
	}
	id, _ := v.(service.Identity)
	return id
}

// RequireStudent redirects callers without a student session to the login page.
func RequireStudent(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIdentity(c).IsStudent() {
			response.AddNotice(c, response.SeverityWarning, response.ErrUnauthorized, message)
			response.AbortRedirect(c, "/login")
			return
		}
		c.Next()
	}
}

// RequireAdmin redirects non-admin callers to the admin login page.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIdentity(c).IsAdmin {
			response.AddNotice(c, response.SeverityWarning, response.ErrUnauthorized, "Admin access required.")
			response.AbortRedirect(c, "/admin-login")
			return
		}
		c.Next()
	}
}

// SetSessionCookie stores the session token until it expires.
func SetSessionCookie(c *gin.Context, token string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", response.SecureCookies, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", response.SecureCookies, true)
}
