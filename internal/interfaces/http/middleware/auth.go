package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brt06a/Testv5/internal/domain/admin"
	"github.com/brt06a/Testv5/internal/shared/constants"
	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

type sessionAuthenticator interface {
	Execute(ctx context.Context, sessionID string) (*admin.Session, error)
}

// AdminAuthMiddleware gates admin routes on an opaque bearer session token.
type AdminAuthMiddleware struct {
	authenticator sessionAuthenticator
	logger        logger.Interface
}

func NewAdminAuthMiddleware(authenticator sessionAuthenticator, logger logger.Interface) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		authenticator: authenticator,
		logger:        logger,
	}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := SessionIDFromHeader(c)

		session, err := m.authenticator.Execute(c.Request.Context(), sessionID)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminID, session.AdminID)
		c.Set(constants.ContextKeySessionID, session.ID)

		c.Next()
	}
}

// SessionIDFromHeader returns the Authorization header with an optional
// "Bearer " prefix removed.
func SessionIDFromHeader(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader(constants.HeaderAuthorization))
	return strings.TrimSpace(strings.TrimPrefix(header, constants.BearerPrefix))
}
