package handlers

import (
	"fmt"
	"net/http"

	"studyshare-backend/auth"
	"studyshare-backend/common"
	"studyshare-backend/models"
	"studyshare-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResourceHandler handles HTTP requests for resources
type ResourceHandler struct {
	resources *service.ResourceService
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resources *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

// CreateResourceRequest represents the request body for creating a
// resource. Owner and creation timestamp are server-assigned; any
// client-supplied values for them are ignored.
type CreateResourceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	FileType    string   `json:"fileType"`
	FileURL     string   `json:"fileUrl"`
	Tags        []string `json:"tags"`
}

// Create handles POST /api/resources
func (h *ResourceHandler) Create(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", common.ErrValidation, err.Error()))
		return
	}

	ownerID, err := uuid.Parse(auth.UserID(c))
	if err != nil {
		respondError(c, common.ErrInvalidCredential)
		return
	}

	_, err = h.resources.Create(c.Request.Context(), service.CreateResourceRequest{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		FileType:    req.FileType,
		FileURL:     req.FileURL,
		OwnerID:     ownerID,
		Tags:        req.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List handles GET /api/resources
func (h *ResourceHandler) List(c *gin.Context) {
	views, err := h.resources.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if views == nil {
		views = []*models.ResourceView{}
	}

	c.JSON(http.StatusOK, gin.H{"resources": views})
}

// Delete handles DELETE /api/resources/:id
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, common.ErrNotFound)
		return
	}

	if err := h.resources.Delete(c.Request.Context(), id, auth.UserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
