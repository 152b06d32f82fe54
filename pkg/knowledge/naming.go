package knowledge

import "strings"

// collectionSuffix is appended to every friendly collection key to form
// the physical store name.
const collectionSuffix = "_collection"

// PhysicalName derives the physical store name from a friendly collection
// key. The derivation is idempotent: a key that already carries the
// suffix is not suffixed again.
//
// Example:
//
//	knowledge.PhysicalName("rehberlik")            // "rehberlik_collection"
//	knowledge.PhysicalName("rehberlik_collection") // "rehberlik_collection"
func PhysicalName(key string) string {
	name := strings.ToLower(strings.TrimSpace(key))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.TrimSuffix(name, collectionSuffix)
	return name + collectionSuffix
}

// FriendlyName recovers the friendly key from a physical store name.
// Doubled suffixes from legacy data are collapsed.
func FriendlyName(physical string) string {
	name := physical
	for strings.HasSuffix(name, collectionSuffix) {
		name = strings.TrimSuffix(name, collectionSuffix)
	}
	return name
}

// IsPhysicalName reports whether a store name follows the collection
// naming convention.
func IsPhysicalName(name string) bool {
	return strings.HasSuffix(name, collectionSuffix)
}
