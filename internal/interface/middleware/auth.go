package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savelife-bd/savelife-server/pkg/helpers"
	"github.com/savelife-bd/savelife-server/pkg/response"
)

// CtxUserEmailKey is where the verified caller email lives in the Gin
// context for downstream handlers.
const CtxUserEmailKey = "userEmail"

// IdentityVerifier resolves a raw Authorization header value to a verified
// identity. The production implementation is helpers.FirebaseVerifier.
type IdentityVerifier interface {
	Verify(ctx context.Context, authHeader string) (helpers.Identity, error)
}

// Auth verifies the bearer token and binds the verified email into the
// request context. Missing and unverifiable tokens both short-circuit with
// the same 401 message; no handler runs in either case.
func Auth(verifier IdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized access", nil)
			c.Abort()
			return
		}
		id, err := verifier.Verify(c.Request.Context(), header)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized access", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserEmailKey, id.Email)
		c.Next()
	}
}
