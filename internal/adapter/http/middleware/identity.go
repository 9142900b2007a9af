package middleware

import (
	"strings"

	"backing_tracks/internal/domain/entities"
	"backing_tracks/internal/infrastructure/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const viewerContextKey = "viewer"

// SessionVerifier validates bearer tokens issued by the auth provider.
type SessionVerifier interface {
	Verify(token string) (identity.Session, error)
}

// Identity resolves who is calling and stores it for handlers.
//
// Public views never fail here: a missing or invalid bearer token leaves the
// viewer anonymous, and the access check decides from there. The guest token
// comes from the `token` query parameter.
func Identity(verifier SessionVerifier, operators identity.OperatorAllowlist, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := entities.ViewerContext{
			PresentedToken: strings.TrimSpace(c.Query("token")),
		}

		if bearer := bearerToken(c.GetHeader("Authorization")); bearer != "" && verifier != nil {
			session, err := verifier.Verify(bearer)
			if err != nil {
				logger.Debug("[identity][middleware] bearer token rejected", zap.Error(err))
			} else {
				viewer.AuthenticatedUserID = session.UserID
				viewer.Email = session.Email
				viewer.IsOperator = operators.IsOperator(session.Email)
			}
		}

		c.Set(viewerContextKey, viewer)
		c.Next()
	}
}

// Viewer returns the caller resolved by Identity, or an anonymous viewer.
func Viewer(c *gin.Context) entities.ViewerContext {
	if v, ok := c.Get(viewerContextKey); ok {
		if viewer, ok := v.(entities.ViewerContext); ok {
			return viewer
		}
	}
	return entities.ViewerContext{PresentedToken: strings.TrimSpace(c.Query("token"))}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
