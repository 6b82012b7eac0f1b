package middleware

import (
	"log/slog"
	"strings"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/MdRakibHossen917/life-nest-company-server/services"
	"github.com/gin-gonic/gin"
)

// Context keys populated by the authorization pipeline.
const PRINCIPAL_EMAIL_KEY = "principal_email"
const PRINCIPAL_NAME_KEY = "principal_name"
const USER_ROLE_KEY = "user_role"

// BearerTokenAuth performs credential extraction and token verification,
// the first two stages of the authorization pipeline. A missing or
// malformed Authorization header and a rejected token both terminate the
// request as unauthenticated; nothing further runs. On success the
// verified principal is placed on the request context.
//
// No storage is touched here. Role resolution is deliberately a separate
// stage (RequireRole) so that routes needing only authentication skip the
// database entirely.
func BearerTokenAuth(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			apierror.Abort(c, apierror.New(apierror.Unauthenticated, "No Authorization header provided"))
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			apierror.Abort(c, apierror.New(apierror.Unauthenticated, "Could not find bearer token in Authorization header"))
			return
		}

		principal, err := verifier.Verify(token)
		if err != nil {
			slog.Debug("token verification failed", "error", err)
			apierror.Abort(c, apierror.Wrap(apierror.Unauthenticated, "Invalid bearer token", err))
			return
		}

		c.Set(PRINCIPAL_EMAIL_KEY, principal.Email)
		c.Set(PRINCIPAL_NAME_KEY, principal.Name)

		c.Next()
	}
}
