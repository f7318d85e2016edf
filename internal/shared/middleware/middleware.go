package middleware

import (
	"net/http"
	"strings"

	"alpineair/internal/identity"
	"alpineair/internal/shared/utils/response"
	"alpineair/internal/users"
	"alpineair/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth for downstream handlers
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// RequireAuth gates a route group on a valid bearer token. The token is
// verified against the identity provider, the subject is mirrored into the
// local users table on first sight, and the resolved user is attached to
// the request context. On any failure the handler chain never runs.
func RequireAuth(verifier identity.Verifier, userRepo users.Repository) gin.HandlerFunc {
	appLogger := logger.GetDefault()

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Authorization header is required", nil, nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "authorization header format must be Bearer {token}", nil, nil)
			c.Abort()
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			appLogger.LogAuthFailure(c.Request.Context(), "token verification failed", c.ClientIP())
			response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid or expired token", nil, nil)
			c.Abort()
			return
		}

		user, err := userRepo.FindOrCreate(c.Request.Context(), ident.SubjectID, ident.Email, ident.Name)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusInternalServerError, "failed to resolve user", nil, nil)
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID.String())
		c.Set(ContextUserEmail, user.Email)

		c.Next()
	}
}

// CORS middleware
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
