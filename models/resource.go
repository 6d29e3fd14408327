package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Resource is the metadata record describing an uploaded file. The
// file itself lives in external object storage; FileURL points at it.
// CreatedAt is always server-assigned.
type Resource struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	FileType    string    `json:"fileType"`
	FileURL     string    `json:"fileUrl"`
	OwnerID     uuid.UUID `json:"uploadedBy"`
	Downloads   int       `json:"downloads"`
	Rating      float64   `json:"rating"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"uploadedAt"`
}

// ResourceView is a resource enriched with the owner's display name
// for presentation. UploaderName falls back to "Unknown" when the
// owner record is missing.
type ResourceView struct {
	Resource
	UploaderName string `json:"uploaderName"`
}

// CleanTags drops empty and whitespace-only entries. Duplicate tags
// are allowed in storage; empty ones are not.
func CleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		cleaned = append(cleaned, tag)
	}
	return cleaned
}
