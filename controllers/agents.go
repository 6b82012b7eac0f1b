package controllers

import (
	"errors"
	"net/http"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateAgentRequest files the caller's request to become an agent. A
// second request for the same email answers conflict.
func (ctrl *Controller) CreateAgentRequest(c *gin.Context) {
	type AgentApplication struct {
		Name        string `json:"name"`
		Experience  string `json:"experience"`
		Specialties string `json:"specialties"`
	}
	var request AgentApplication
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}

	name := request.Name
	if name == "" {
		name = principalName(c)
	}

	agentRequest, err := ctrl.DB.CreateAgentRequest(&models.AgentRequest{
		Email:       principalEmail(c),
		Name:        name,
		Experience:  request.Experience,
		Specialties: request.Specialties,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierror.Respond(c, apierror.New(apierror.Conflict, "An agent request for this email already exists"))
			return
		}
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to create agent request", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": agentRequest.PublicId})
}

// ListApprovedAgents is the public agent directory.
func (ctrl *Controller) ListApprovedAgents(c *gin.Context) {
	agents, err := ctrl.DB.ListAgentRequests(models.AgentRequestStatusApproved)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error listing agents", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "agents": agents})
}

func (ctrl *Controller) ListAgentRequests(c *gin.Context) {
	requests, err := ctrl.DB.ListAgentRequests(c.Query("status"))
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error listing agent requests", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requests": requests})
}

// SetAgentRequestStatus approves or rejects a pending agent request.
// Approval also promotes the requesting user's stored role to agent.
func (ctrl *Controller) SetAgentRequestStatus(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}
	type StatusRequest struct {
		Status string `json:"status"`
	}
	var request StatusRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}
	if request.Status != models.AgentRequestStatusApproved && request.Status != models.AgentRequestStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown status"})
		return
	}

	agentRequest, err := ctrl.DB.UpdateAgentRequestStatus(id, request.Status)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to update agent request", err))
		return
	}
	if agentRequest == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Agent request not found"))
		return
	}

	if request.Status == models.AgentRequestStatusApproved {
		// the requester may not have a profile row yet; promotion creates it
		if _, err := ctrl.DB.PromoteUser(agentRequest.Email, agentRequest.Name, models.AgentRole); err != nil {
			apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to promote user", err))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": agentRequest})
}
