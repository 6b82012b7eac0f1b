package controllers

import (
	"strconv"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/MdRakibHossen917/life-nest-company-server/middleware"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/gin-gonic/gin"
)

func principalEmail(c *gin.Context) string {
	return c.GetString(middleware.PRINCIPAL_EMAIL_KEY)
}

func principalName(c *gin.Context) string {
	return c.GetString(middleware.PRINCIPAL_NAME_KEY)
}

// requirePublicId pulls the :id path segment and answers a malformed value
// as not found rather than bad request, matching how the store itself
// would answer an unknown key.
func requirePublicId(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !models.IsPublicId(id) {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Record not found"))
		return "", false
	}
	return id, true
}

// resolveRole returns the role already resolved by the pipeline, falling
// back to a role-store lookup for routes that only required
// authentication. An absent record reads as plain user.
func (ctrl *Controller) resolveRole(c *gin.Context) (string, error) {
	if role := c.GetString(middleware.USER_ROLE_KEY); role != "" {
		return role, nil
	}
	user, err := ctrl.DB.GetUserByEmail(principalEmail(c))
	if err != nil {
		return "", err
	}
	role := models.UserRole
	if user != nil {
		role = user.Role
	}
	c.Set(middleware.USER_ROLE_KEY, role)
	return role, nil
}

// requireOwnerOrAdmin is the handler-level ownership stage: the caller
// must be the record's creator or hold the admin role. It runs before any
// mutation so a failed check leaves no partial side effect. On failure it
// has already written the response.
func (ctrl *Controller) requireOwnerOrAdmin(c *gin.Context, ownerEmail string) bool {
	if principalEmail(c) == ownerEmail {
		return true
	}
	role, err := ctrl.resolveRole(c)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching user record", err))
		return false
	}
	if role == models.AdminRole {
		return true
	}
	apierror.Respond(c, apierror.New(apierror.Forbidden, "Forbidden: not the owner of this record"))
	return false
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 9
	}
	return page, limit
}
