package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMine_FiltersByOwner(t *testing.T) {
	resources := []Resource{
		{ID: "r1", UploadedBy: "u1"},
		{ID: "r2", UploadedBy: "u2"},
		{ID: "r3", UploadedBy: "u1"},
	}

	mine := Mine(resources, "u1")
	require.Len(t, mine, 2)
	assert.Equal(t, "r1", mine[0].ID)
	assert.Equal(t, "r3", mine[1].ID)

	assert.Empty(t, Mine(resources, "u3"))
}

func TestMine_OrderPreservingSubset(t *testing.T) {
	resources := []Resource{
		{ID: "a", UploadedBy: "u1"},
		{ID: "b", UploadedBy: "u2"},
		{ID: "c", UploadedBy: "u1"},
		{ID: "d", UploadedBy: "u1"},
	}

	mine := Mine(resources, "u1")

	// Every element satisfies the ownership predicate and the input
	// order is preserved.
	seen := map[string]bool{}
	for _, r := range resources {
		seen[r.ID] = true
	}
	prev := -1
	for _, m := range mine {
		assert.True(t, seen[m.ID])
		assert.Equal(t, "u1", m.UploadedBy.String())
		idx := indexOf(resources, m.ID)
		assert.Greater(t, idx, prev)
		prev = idx
	}
}

func indexOf(resources []Resource, id string) int {
	for i, r := range resources {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func TestMine_Idempotent(t *testing.T) {
	resources := []Resource{
		{ID: "r1", UploadedBy: "u1"},
		{ID: "r2", UploadedBy: "u2"},
	}

	once := Mine(resources, "u1")
	twice := Mine(once, "u1")
	assert.Equal(t, once, twice)
}

func TestMine_EmbeddedOwnerObject(t *testing.T) {
	// Post-join representation: owner arrives as an embedded document.
	raw := `[
		{"id": "r1", "uploadedBy": {"_id": "u1", "name": "Alice"}},
		{"id": "r2", "uploadedBy": "u2"},
		{"id": "r3", "uploadedBy": {"$oid": "u1"}}
	]`

	var resources []Resource
	require.NoError(t, json.Unmarshal([]byte(raw), &resources))

	mine := Mine(resources, "u1")
	require.Len(t, mine, 2)
	assert.Equal(t, "r1", mine[0].ID)
	assert.Equal(t, "r3", mine[1].ID)
}

func TestMine_EmptySnapshot(t *testing.T) {
	assert.Empty(t, Mine(nil, "u1"))
	assert.Empty(t, Mine([]Resource{}, "u1"))
}
