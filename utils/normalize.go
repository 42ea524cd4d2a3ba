package utils

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeIDs walks a document value and converts every ObjectID to its
// canonical hex string, so identifiers leave the core in transport-safe
// form no matter how deeply they are nested (order -> item -> bundleDetails
// -> item -> productDetails). Maps and slices are rewritten in place and
// returned; nil and non-identifier values pass through unchanged.
func NormalizeIDs(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case bson.M:
		for k, val := range t {
			t[k] = NormalizeIDs(val)
		}
		return t
	case map[string]interface{}:
		for k, val := range t {
			t[k] = NormalizeIDs(val)
		}
		return t
	case bson.D:
		m := make(bson.M, len(t))
		for _, e := range t {
			m[e.Key] = NormalizeIDs(e.Value)
		}
		return m
	case bson.A:
		for i := range t {
			t[i] = NormalizeIDs(t[i])
		}
		return t
	case []interface{}:
		for i := range t {
			t[i] = NormalizeIDs(t[i])
		}
		return t
	case []bson.M:
		for i := range t {
			NormalizeIDs(t[i])
		}
		return t
	default:
		return v
	}
}

// NormalizeItems is a convenience wrapper for line-item slices.
func NormalizeItems(items []bson.M) []bson.M {
	NormalizeIDs(items)
	return items
}
