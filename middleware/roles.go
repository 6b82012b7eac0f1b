package middleware

import (
	"log/slog"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/gin-gonic/gin"
)

// RequireRole resolves the stored role for the verified principal and
// admits the request only when that role equals one of allowedRoles.
// Roles are disjoint, not a hierarchy: admin does not pass an agent-only
// route unless the route lists both roles.
//
// An absent user record resolves to the plain user role; the check never
// creates a record. A storage failure is reported as unavailable, which is
// a different failure than forbidden.
func RequireRole(db *models.Database, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(PRINCIPAL_EMAIL_KEY)
		if email == "" {
			apierror.Abort(c, apierror.New(apierror.Unauthenticated, "No verified identity on request"))
			return
		}

		user, err := db.GetUserByEmail(email)
		if err != nil {
			apierror.Abort(c, apierror.Wrap(apierror.Unavailable, "Error fetching user record", err))
			return
		}
		role := models.UserRole
		if user != nil {
			role = user.Role
		}
		c.Set(USER_ROLE_KEY, role)

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		slog.Debug("role check failed", "email", email, "role", role)
		apierror.Abort(c, apierror.New(apierror.Forbidden, "Forbidden: insufficient role for this resource"))
	}
}
