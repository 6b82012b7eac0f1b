package controllers

import (
	"net/http"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/gin-gonic/gin"
)

func (ctrl *Controller) AdminStats(c *gin.Context) {
	stats, err := ctrl.DB.GetDashboardStats()
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error computing dashboard stats", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
