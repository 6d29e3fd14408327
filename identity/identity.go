// Package identity normalizes user and owner references to a single
// canonical string form. Owner references have historically reached
// consumers in several shapes: a plain identifier string, an embedded
// object carrying the identifier under a backend-specific key, or a
// value whose stringification yields the identifier. Every ownership
// comparison in the project goes through Canonical so that all shapes
// compare equal.
package identity

import (
	"encoding/json"
	"fmt"
)

// idKeys are the identifier field names used by the storage backends
// that have produced embedded owner objects.
var idKeys = []string{"_id", "$oid", "id"}

// Canonical returns the canonical string form of an owner or user
// reference. A nil reference canonicalizes to the empty string.
func Canonical(ref any) string {
	switch v := ref.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		for _, key := range idKeys {
			if id, ok := v[key]; ok {
				return Canonical(id)
			}
		}
		return fmt.Sprint(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// OwnerRef is an owner reference normalized to canonical form at the
// JSON decode boundary. Records produced by older backends may carry
// the owner as a raw string, an embedded object, or a joined document;
// after unmarshalling, OwnerRef always holds the canonical identifier.
type OwnerRef string

// UnmarshalJSON accepts any historical owner-reference shape and stores
// its canonical form.
func (r *OwnerRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = OwnerRef(s)
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = OwnerRef(Canonical(v))
	return nil
}

func (r OwnerRef) String() string {
	return string(r)
}
