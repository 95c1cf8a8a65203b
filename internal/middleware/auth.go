package middleware

import (
	"context"
	"strings"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	pkgmiddleware "github.com/KakonDebnath/bistro-boss-server/pkg/middleware"
	"github.com/KakonDebnath/bistro-boss-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// ContextKeyClaims is the gin context key of the verified identity claim
const ContextKeyClaims = "identity_claims"

// TokenVerifier validates a bearer token
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.IdentityClaim, error)
}

// AdminChecker answers whether an email belongs to an admin
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// VerifyJWT rejects requests without a valid "Bearer <token>" Authorization
// header and stores the decoded claim on the context.
func VerifyJWT(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c, response.MsgUnauthorized)
			return
		}

		claim, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			_ = c.Error(err)
			response.Unauthorized(c, response.MsgUnauthorized)
			return
		}

		c.Set(ContextKeyClaims, claim)
		c.Set(pkgmiddleware.ContextKeyEmail, claim.Email)
		c.Next()
	}
}

// VerifyAdmin allows only callers whose stored user record has the admin role.
// It must run after VerifyJWT.
func VerifyAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claim, ok := GetClaims(c)
		if !ok {
			response.Unauthorized(c, response.MsgUnauthorized)
			return
		}

		admin, err := checker.IsAdmin(c.Request.Context(), claim.Email)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		if !admin {
			response.Forbidden(c, response.MsgForbiddenUser)
			return
		}
		c.Next()
	}
}

// GetClaims returns the claim stored by VerifyJWT
func GetClaims(c *gin.Context) (*domain.IdentityClaim, bool) {
	v, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claim, ok := v.(*domain.IdentityClaim)
	return claim, ok && claim != nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
