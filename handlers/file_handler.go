package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"studyshare-backend/common"
	"studyshare-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler handles HTTP requests for file uploads
type FileHandler struct {
	storage          storage.Storage
	maxFileSize      int64
	allowedMimeTypes map[string]bool
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileStorage storage.Storage) *FileHandler {
	return &FileHandler{
		storage:     fileStorage,
		maxFileSize: 20 * 1024 * 1024, // 20MB
		allowedMimeTypes: map[string]bool{
			"application/pdf":    true,
			"text/plain":         true,
			"application/msword": true, // .doc
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   true, // .docx
			"application/vnd.ms-powerpoint":                                             true, // .ppt
			"application/vnd.openxmlformats-officedocument.presentationml.presentation": true, // .pptx
			"image/png":  true,
			"image/jpeg": true,
		},
	}
}

// Upload handles POST /api/upload. Validation happens before any
// storage write; the response carries the durable URL of the stored
// file.
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, fmt.Errorf("%w: no file uploaded", common.ErrValidation))
		return
	}

	if fileHeader.Size > h.maxFileSize {
		respondError(c, fmt.Errorf("%w: file size exceeds maximum of %d bytes", common.ErrValidation, h.maxFileSize))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = inferMimeType(fileHeader.Filename)
	}
	if !h.allowedMimeTypes[mimeType] && !strings.HasPrefix(mimeType, "text/") {
		respondError(c, fmt.Errorf("%w: file type not allowed", common.ErrValidation))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	url, err := h.storage.Upload(c.Request.Context(), uuid.New(), fileHeader.Filename, file)
	if err != nil {
		respondError(c, fmt.Errorf("failed to upload file: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// inferMimeType guesses a MIME type from the filename extension
func inferMimeType(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(name, ".txt"):
		return "text/plain"
	case strings.HasSuffix(name, ".doc"):
		return "application/msword"
	case strings.HasSuffix(name, ".docx"):
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case strings.HasSuffix(name, ".ppt"):
		return "application/vnd.ms-powerpoint"
	case strings.HasSuffix(name, ".pptx"):
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case strings.HasSuffix(name, ".png"):
		return "image/png"
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
