package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/madrasah/internal/pkg/apperrors"
	"github.com/yigit/madrasah/internal/pkg/logger"
	"github.com/yigit/madrasah/internal/pkg/session"
)

const (
	sessionKey      = "session"
	sessionErrorKey = "sessionError"
)

// SessionCookie writes and expires the session cookie
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Set stores token in the cookie for the session lifetime
func (sc SessionCookie) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, token, int(sc.TTL.Seconds()), "/", "", sc.Secure, true)
}

// Clear tells the browser to drop the cookie
func (sc SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}

// Token returns the raw cookie value, or ""
func (sc SessionCookie) Token(c *gin.Context) string {
	token, err := c.Cookie(sc.Name)
	if err != nil {
		return ""
	}
	return token
}

// Sessions resolves the session cookie, if any, and stores the session in the context.
// Requests without a valid session continue anonymously.
func Sessions(manager *session.Manager, cookie SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.Token(c)
		if token == "" {
			c.Next()
			return
		}

		s, err := manager.Load(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(sessionKey, s)
		case errors.Is(err, apperrors.ErrSessionNotFound):
		default:
			logger.Warn().Err(err).Str("requestID", RequestIDFrom(c)).Msg("Failed to load session")
			c.Set(sessionErrorKey, err)
		}
		c.Next()
	}
}

// RequireAuth rejects requests that carry no live session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); ok {
			c.Next()
			return
		}
		if v, exists := c.Get(sessionErrorKey); exists {
			if err, ok := v.(error); ok {
				HandleAPIError(c, err, MsgInternalError)
				return
			}
		}
		HandleAPIError(c, apperrors.ErrUnauthenticated, MsgAuthenticationRequired)
	}
}

// CurrentSession returns the session loaded by Sessions
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok && s != nil
}
