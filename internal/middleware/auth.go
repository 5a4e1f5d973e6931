package middleware

import (
	"net/http"

	"github.com/coursechat/backend/internal/auth"
	"github.com/coursechat/backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

const AdminClaimsKey = "admin_claims"

// RequireAdmin guards admin routes behind a valid bearer token.
func RequireAdmin(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(AdminClaimsKey, claims)
		c.Next()
	}
}
