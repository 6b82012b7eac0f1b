package controllers

import (
	"errors"
	"net/http"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (ctrl *Controller) CreateReview(c *gin.Context) {
	type ReviewRequest struct {
		PolicyId string `json:"policyId"`
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
	}
	var request ReviewRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}
	if request.Rating < 1 || request.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Rating must be between 1 and 5"})
		return
	}

	review, err := ctrl.DB.CreateReview(&models.Review{
		PolicyId:      request.PolicyId,
		ReviewerEmail: principalEmail(c),
		ReviewerName:  principalName(c),
		Rating:        request.Rating,
		Comment:       request.Comment,
	})
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to create review", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": review.PublicId})
}

func (ctrl *Controller) ListReviews(c *gin.Context) {
	reviews, err := ctrl.DB.ListReviews(10)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error listing reviews", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

// SubscribeNewsletter is open to anyone; a repeat subscription for the
// same email answers conflict.
func (ctrl *Controller) SubscribeNewsletter(c *gin.Context) {
	type SubscribeRequest struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name"`
	}
	var request SubscribeRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A valid email is required"})
		return
	}

	_, err := ctrl.DB.CreateNewsletterSubscription(request.Email, request.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierror.Respond(c, apierror.New(apierror.Conflict, "This email is already subscribed"))
			return
		}
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to subscribe", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subscribed to newsletter"})
}
