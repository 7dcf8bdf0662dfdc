package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewObjectID returns a fresh 24-character lowercase hex identifier.
func NewObjectID() string {
	return primitive.NewObjectID().Hex()
}

// ParseObjectID validates s as a 24-character hex identifier and returns its
// canonical lowercase form.
func ParseObjectID(s string) (string, bool) {
	if len(s) != 24 {
		return "", false
	}
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return "", false
	}
	return oid.Hex(), true
}
