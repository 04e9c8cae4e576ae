// Package middleware provides gin middleware for the complaint-center service.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/complaint-center/pkg/auth"
	"github.com/kart-io/complaint-center/pkg/errors"
	"github.com/kart-io/complaint-center/pkg/response"
)

// AuthScheme is the expected authorization scheme.
const AuthScheme = "Bearer"

// Auth returns a middleware that authenticates requests with a bearer token.
//
// The token is extracted from the Authorization header, verified through the
// authenticator, and the resulting claims are injected into the request
// context. Requests without a valid token are rejected with 401 before
// reaching the handler.
func Auth(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Fail(c, errors.ErrUnauthorized.WithMessage("missing authentication token"))
			c.Abort()
			return
		}

		claims, err := authenticator.Verify(c.Request.Context(), tokenString)
		if err != nil {
			response.FailWithError(c, err)
			c.Abort()
			return
		}

		ctx := auth.InjectAuth(c.Request.Context(), claims, tokenString)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractToken extracts the bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	token := c.GetHeader("Authorization")
	if strings.HasPrefix(token, AuthScheme+" ") {
		token = strings.TrimPrefix(token, AuthScheme+" ")
	}
	return strings.TrimSpace(token)
}
