package controllers

import (
	"net/http"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/gin-gonic/gin"
)

type PolicyRequest struct {
	Title            string `json:"title"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	MinAge           int    `json:"minAge"`
	MaxAge           int    `json:"maxAge"`
	CoverageMinCents int64  `json:"coverageMin"`
	CoverageMaxCents int64  `json:"coverageMax"`
	DurationYears    int    `json:"durationYears"`
	BasePremiumCents int64  `json:"basePremium"`
	ImageURL         string `json:"imageURL"`
}

func (r *PolicyRequest) toModel() *models.Policy {
	return &models.Policy{
		Title:            r.Title,
		Category:         r.Category,
		Description:      r.Description,
		MinAge:           r.MinAge,
		MaxAge:           r.MaxAge,
		CoverageMinCents: r.CoverageMinCents,
		CoverageMaxCents: r.CoverageMaxCents,
		DurationYears:    r.DurationYears,
		BasePremiumCents: r.BasePremiumCents,
		ImageURL:         r.ImageURL,
	}
}

func (ctrl *Controller) ListPolicies(c *gin.Context) {
	page, limit := pageParams(c)
	policies, total, err := ctrl.DB.ListPolicies(c.Query("category"), c.Query("search"), page, limit)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error listing policies", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "policies": policies, "total": total, "page": page, "limit": limit})
}

func (ctrl *Controller) TopPolicies(c *gin.Context) {
	policies, err := ctrl.DB.TopPolicies(6)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error listing top policies", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "policies": policies})
}

func (ctrl *Controller) GetPolicy(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}
	policy, err := ctrl.DB.GetPolicy(id)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching policy", err))
		return
	}
	if policy == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Policy not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "policy": policy})
}

func (ctrl *Controller) CreatePolicy(c *gin.Context) {
	var request PolicyRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}

	policy, err := ctrl.DB.CreatePolicy(request.toModel())
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to create policy", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": policy.PublicId})
}

func (ctrl *Controller) UpdatePolicy(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}
	var request PolicyRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}

	policy, err := ctrl.DB.UpdatePolicy(id, request.toModel())
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to update policy", err))
		return
	}
	if policy == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Policy not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "policy": policy})
}

func (ctrl *Controller) DeletePolicy(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}
	deleted, err := ctrl.DB.DeletePolicy(id)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to delete policy", err))
		return
	}
	if !deleted {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Policy not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Policy deleted"})
}
