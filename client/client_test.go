package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefresh_PopulatesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/resources", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"resources": []map[string]any{
				{"id": "r1", "title": "Notes", "uploadedBy": "u1", "uploaderName": "Alice"},
				{"id": "r2", "title": "Slides", "uploadedBy": map[string]any{"_id": "u2", "name": "Bob"}},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	require.NoError(t, c.Refresh(context.Background()))

	resources := c.Resources()
	require.Len(t, resources, 2)
	assert.Equal(t, "Notes", resources[0].Title)
	assert.Equal(t, "u1", resources[0].UploadedBy.String())
	// Embedded owner object normalized on decode.
	assert.Equal(t, "u2", resources[1].UploadedBy.String())
}

func TestRefresh_FailureKeepsPreviousSnapshot(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Server error"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"resources": []map[string]any{{"id": "r1", "title": "Notes", "uploadedBy": "u1"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	require.NoError(t, c.Refresh(context.Background()))
	require.Len(t, c.Resources(), 1)

	fail.Store(true)
	err := c.Refresh(context.Background())
	assert.Error(t, err)
	// Previous snapshot untouched.
	assert.Len(t, c.Resources(), 1)
	assert.Equal(t, "r1", c.Resources()[0].ID)
}

func TestCreateResource_RefetchesSnapshot(t *testing.T) {
	var created atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			created.Store(true)
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		default:
			listing := []map[string]any{}
			if created.Load() {
				listing = append(listing, map[string]any{"id": "r1", "title": "Notes", "uploadedBy": "u1"})
			}
			json.NewEncoder(w).Encode(map[string]any{"resources": listing})
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", WithToken("tok"))
	require.NoError(t, c.Refresh(context.Background()))
	assert.Empty(t, c.Resources())

	require.NoError(t, c.CreateResource(context.Background(), CreateResourceRequest{
		Title:   "Notes",
		FileURL: "https://example.com/notes.pdf",
	}))
	assert.Len(t, c.Resources(), 1)
}

func TestDeleteResource_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "not authorized to delete this resource"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"resources": []map[string]any{{"id": "r1", "title": "Notes", "uploadedBy": "u1"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", WithToken("tok"))
	require.NoError(t, c.Refresh(context.Background()))

	err := c.DeleteResource(context.Background(), "r1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authorized")
	// Snapshot untouched on failed mutation.
	assert.Len(t, c.Resources(), 1)
}
