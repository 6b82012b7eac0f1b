package controllers

import (
	"log/slog"
	"net/http"

	"github.com/MdRakibHossen917/life-nest-company-server/apierror"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/gin-gonic/gin"
)

func (ctrl *Controller) ListBlogs(c *gin.Context) {
	blogs, err := ctrl.DB.ListBlogs()
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error listing blogs", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blogs": blogs})
}

// GetBlog serves one post and counts the visit. The counter bump is best
// effort; a failed bump does not fail the read.
func (ctrl *Controller) GetBlog(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}
	blog, err := ctrl.DB.GetBlog(id)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching blog", err))
		return
	}
	if blog == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Blog not found"))
		return
	}

	if err := ctrl.DB.IncrementBlogVisits(id); err != nil {
		slog.Warn("failed to count blog visit", "blogId", id, "error", err)
	} else {
		blog.TotalVisits++
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog})
}

func (ctrl *Controller) CreateBlog(c *gin.Context) {
	type BlogRequest struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	var request BlogRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}

	blog, err := ctrl.DB.CreateBlog(&models.Blog{
		Title:       request.Title,
		Content:     request.Content,
		AuthorEmail: principalEmail(c),
		AuthorName:  principalName(c),
	})
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to create blog", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": blog.PublicId})
}

func (ctrl *Controller) GetMyBlogs(c *gin.Context) {
	blogs, err := ctrl.DB.GetBlogsByAuthor(principalEmail(c))
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching blogs", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blogs": blogs})
}

// UpdateBlog edits a post; only its author or an admin may, and the check
// runs before the write.
func (ctrl *Controller) UpdateBlog(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}
	type BlogRequest struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	var request BlogRequest
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error binding JSON"})
		return
	}

	blog, err := ctrl.DB.GetBlog(id)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching blog", err))
		return
	}
	if blog == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Blog not found"))
		return
	}
	if !ctrl.requireOwnerOrAdmin(c, blog.AuthorEmail) {
		return
	}

	blog, err = ctrl.DB.UpdateBlog(id, request.Title, request.Content)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to update blog", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog})
}

func (ctrl *Controller) DeleteBlog(c *gin.Context) {
	id, ok := requirePublicId(c)
	if !ok {
		return
	}

	blog, err := ctrl.DB.GetBlog(id)
	if err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Error fetching blog", err))
		return
	}
	if blog == nil {
		apierror.Respond(c, apierror.New(apierror.NotFound, "Blog not found"))
		return
	}
	if !ctrl.requireOwnerOrAdmin(c, blog.AuthorEmail) {
		return
	}

	if _, err := ctrl.DB.DeleteBlog(id); err != nil {
		apierror.Respond(c, apierror.Wrap(apierror.Unavailable, "Failed to delete blog", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog deleted"})
}
