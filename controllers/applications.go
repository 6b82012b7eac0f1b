package controllers

import (
	"net/http"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/MdRakibHossen917/life-nest-company-server/segment"
	"github.com/gin-gonic/gin"
)

// CreateApplication files an insurance application for the caller. The
// applicant email comes from the verified principal and the status always
// starts as pending.
func (ctrl *Controller) CreateApplication(c *gin.Context) {
	type ApplicationRequest struct {
		PolicyId         string `json:"policyId"`
		Name             string `json:"aname"`
		Address          string `json:"address"`
		NomineeName      string `json:"nomineeName"`
		NomineeRelation  string `json:"nomineeRelation"`
		HealthDisclosure string `json:"healthDisclosure"`
	}

	var request ApplicationRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}

	name := request.Name
	if name == "" {
		name = principalName(c)
	}

	application, err := ctrl.DB.CreateApplication(&models.Application{
		PolicyId:         request.PolicyId,
		ApplicantEmail:   principalEmail(c),
		ApplicantName:    name,
		Address:          request.Address,
		NomineeName:      request.NomineeName,
		NomineeRelation:  request.NomineeRelation,
		HealthDisclosure: request.HealthDisclosure,
	})
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to create application", err))
		return
	}

	segment.Track(application.ApplicantEmail, "Application Submitted", map[string]string{
		"applicationId": application.PublicId,
		"policyId":      application.PolicyId,
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": application.PublicId})
}

// GetMyApplications lists the caller's own applications. An admin may pass
// ?email= to inspect someone else's; for everyone else the parameter is
// ignored in favor of the principal.
func (ctrl *Controller) GetMyApplications(c *gin.Context) {
	email := principalEmail(c)
	if requested := c.Query("email"); requested != "" && requested != email {
		role, err := ctrl.resolveRole(c)
		if err != nil {
			apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching user record", err))
			return
		}
		if role == models.AdminRole {
			email = requested
		}
	}

	applications, err := ctrl.DB.GetApplicationsForApplicant(email)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching applications", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications})
}

// DeleteApplication removes an application. Only its creator or an admin
// may do so, and the check runs before the delete executes.
func (ctrl *Controller) DeleteApplication(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}

	application, err := ctrl.DB.GetApplication(id)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching application", err))
		return
	}
	if application == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Application not found"))
		return
	}
	if !ctrl.requireOwnerOrAdmin(c, application.ApplicantEmail) {
		return
	}

	if _, err := ctrl.DB.DeleteApplication(id); err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to delete application", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application deleted"})
}

func (ctrl *Controller) ListApplications(c *gin.Context) {
	applications, err := ctrl.DB.ListApplications(c.Query("status"))
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error listing applications", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications})
}

// AssignAgent attaches an approved agent to an application so the agent
// can process it.
func (ctrl *Controller) AssignAgent(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}
	type AssignRequest struct {
		AgentEmail string `json:"agentEmail"`
	}
	var request AssignRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}

	agent, err := ctrl.DB.GetUserByEmail(request.AgentEmail)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching user record", err))
		return
	}
	if agent == nil || agent.Role != models.AgentRole {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Agent not found"))
		return
	}

	application, err := ctrl.DB.AssignAgentToApplication(id, request.AgentEmail)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to assign agent", err))
		return
	}
	if application == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Application not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": application})
}

// RejectApplication is the admin rejection path, carrying feedback for
// the applicant.
func (ctrl *Controller) RejectApplication(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}
	type RejectRequest struct {
		Feedback string `json:"feedback"`
	}
	var request RejectRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}

	application, err := ctrl.DB.UpdateApplicationStatus(id, models.ApplicationStatusRejected, request.Feedback)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to reject application", err))
		return
	}
	if application == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Application not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": application})
}

// GetAssignedApplications lists the applications assigned to the calling
// agent.
func (ctrl *Controller) GetAssignedApplications(c *gin.Context) {
	applications, err := ctrl.DB.GetApplicationsForAgent(principalEmail(c))
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching applications", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications})
}

// SetApplicationStatus lets the assigned agent approve or reject an
// application. An agent cannot touch applications assigned to someone
// else.
func (ctrl *Controller) SetApplicationStatus(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}
	type StatusRequest struct {
		Status   string `json:"status"`
		Feedback string `json:"feedback"`
	}
	var request StatusRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}
	if request.Status != models.ApplicationStatusApproved && request.Status != models.ApplicationStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown status"})
		return
	}

	application, err := ctrl.DB.GetApplication(id)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching application", err))
		return
	}
	if application == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Application not found"))
		return
	}
	if application.AssignedAgentEmail != principalEmail(c) {
		apierror.Respond(c, apierror.New(apierror.Forbidden, "Forbidden: application is not assigned to you"))
		return
	}

	application, err = ctrl.DB.UpdateApplicationStatus(id, request.Status, request.Feedback)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to update application", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": application})
}
