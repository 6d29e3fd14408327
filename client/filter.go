package client

import "studyshare-backend/identity"

// Mine returns the subsequence of resources owned by the given user.
// The comparison runs on canonical identifier strings, so records
// whose owner reference arrived as a raw string, an embedded object or
// a stringified object all match the same user. The filter is pure and
// order-preserving.
func Mine(resources []Resource, currentUserID string) []Resource {
	me := identity.Canonical(currentUserID)
	mine := make([]Resource, 0)
	for _, r := range resources {
		if identity.Canonical(r.UploadedBy.String()) == me {
			mine = append(mine, r)
		}
	}
	return mine
}
