package controllers

import (
	"log/slog"
	"net/http"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/MdRakibHossen917/life-nest-company-server/segment"
	"github.com/gin-gonic/gin"
)

// UpsertProfile creates or refreshes the caller's own profile record. The
// email always comes from the verified principal, never the body, and the
// stored role is untouched; a first upsert lands with the default user
// role.
func (ctrl *Controller) UpsertProfile(c *gin.Context) {
	type ProfileRequest struct {
		Name     string `json:"name"`
		PhotoURL string `json:"photoURL"`
	}

	var request ProfileRequest
	if err := c.BindJSON(&request); err != nil {
		slog.Debug("error binding profile request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}

	email := principalEmail(c)
	name := request.Name
	if name == "" {
		name = principalName(c)
	}

	user, err := ctrl.DB.UpsertUser(email, name, request.PhotoURL)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to save profile", err))
		return
	}

	segment.IdentifyUser(user.Email, user.Name, user.Role)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GetUser serves a single profile. Callers may fetch their own record;
// fetching anyone else's requires the admin role.
func (ctrl *Controller) GetUser(c *gin.Context) {
	email := c.Param("email")

	if email != principalEmail(c) {
		role, err := ctrl.resolveRole(c)
		if err != nil {
			apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching user record", err))
			return
		}
		if role != models.AdminRole {
			apierror.Respond(c, apierror.New(apierror.Forbidden, "Forbidden: cannot read another user's profile"))
			return
		}
	}

	user, err := ctrl.DB.GetUserByEmail(email)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching user record", err))
		return
	}
	if user == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "User not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (ctrl *Controller) ListUsers(c *gin.Context) {
	page, limit := pageParams(c)
	users, total, err := ctrl.DB.ListUsers(page, limit)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error listing users", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users, "total": total, "page": page, "limit": limit})
}

// UpdateUserRole promotes or demotes a user. Role changes happen only
// here and through agent-request approval.
func (ctrl *Controller) UpdateUserRole(c *gin.Context) {
	type RoleRequest struct {
		Role string `json:"role"`
	}

	var request RoleRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}
	if request.Role != models.UserRole && request.Role != models.AgentRole && request.Role != models.AdminRole {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown role"})
		return
	}

	user, err := ctrl.DB.UpdateUserRole(c.Param("email"), request.Role)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to update role", err))
		return
	}
	if user == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "User not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
