package resolver

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDTime decodes the creation instant embedded in a 24-hex record id:
// the leading 8 hex characters are big-endian Unix seconds.
func ObjectIDTime(id string) (time.Time, bool) {
	if len(id) != 24 {
		return time.Time{}, false
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return time.Time{}, false
	}
	return oid.Timestamp(), true
}
