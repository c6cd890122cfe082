package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/interfaces/http/response"
	"panchayat.backend/internal/usecases"
	"panchayat.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionKey is the context key for the verified session
	SessionKey = "session"
)

// SessionVerifier resolves a bearer token into a session.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*usecases.Session, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// resolved session for handlers.
func AuthMiddleware(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			response.Abort(c, domainerrors.Unauthorized("Authorization header is required"))
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.Abort(c, domainerrors.Unauthorized("Invalid authorization format. Use: Bearer <token>"))
			return
		}

		session, err := verifier.VerifySession(c.Request.Context(), strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix)))
		if err != nil {
			logger.Debug(c.Request.Context(), "Rejected bearer token")
			response.Abort(c, err)
			return
		}

		c.Set(SessionKey, session)
		c.Request = c.Request.WithContext(logger.WithActor(c.Request.Context(), session.Actor.Username))
		c.Next()
	}
}

// GetSession returns the session stored by AuthMiddleware.
func GetSession(c *gin.Context) (*usecases.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*usecases.Session)
	return session, ok && session != nil
}

// GetActor returns the authenticated actor, or the anonymous actor when the
// request carries no session.
func GetActor(c *gin.Context) access.Actor {
	session, ok := GetSession(c)
	if !ok {
		return access.Actor{}
	}
	return session.Actor
}

// RequireRole creates a middleware that requires one of roles
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			response.Abort(c, domainerrors.Unauthorized("authentication required"))
			return
		}

		for _, role := range roles {
			if session.Actor.Role == role {
				c.Next()
				return
			}
		}
		response.Abort(c, domainerrors.Forbidden("Insufficient permissions"))
	}
}
