package http

import (
	"errors"
	"net/http"

	"blogpress/internal/entity"
	"blogpress/internal/usecase"
	"blogpress/pkg/logger"
	"blogpress/pkg/session"

	"github.com/gin-gonic/gin"
)

const (
	adminIDKey = "admin_id"
	adminKey   = "admin"
)

// RequireAdmin resolves the session cookie to an existing admin and stores it
// in the context, or rejects the request with 401.
func RequireAdmin(auth usecase.AuthUseCase, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := auth.ResolveSession(c.Request.Context(), session.TokenFrom(c.Request))
		if err != nil {
			if errors.Is(err, entity.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized access"})
				return
			}
			log.Error("Failed to resolve session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to verify session"})
			return
		}

		c.Set(adminIDKey, admin.ID)
		c.Set(adminKey, admin)
		c.Next()
	}
}
