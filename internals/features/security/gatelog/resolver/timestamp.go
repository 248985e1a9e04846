package resolver

import (
	"strings"
	"time"

	"hostel_admin_backend/internals/features/security/gatelog/model"
)

// DisplayLayout renders DD/MM/YYYY, hh:mm a.
const DisplayLayout = "02/01/2006, 03:04 pm"

// Unresolved is shown when no evidence yields an instant.
const Unresolved = "---"

// accessor reads one spelling of a timestamp field off an action.
type accessor struct {
	name string
	get  func(model.SecurityAction) string
}

// actionTimeAccessors is the evidence order for an action's own timestamp.
var actionTimeAccessors = []accessor{
	{"action_time", func(a model.SecurityAction) string { return a.ActionTime }},
	{"updated_at", func(a model.SecurityAction) string { return a.UpdatedAt }},
	{"updatedAt", func(a model.SecurityAction) string { return a.UpdatedAtCamel }},
	{"created_at", func(a model.SecurityAction) string { return a.CreatedAt }},
	{"createdAt", func(a model.SecurityAction) string { return a.CreatedAtCamel }},
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp accepts the ISO-8601 shapes the request documents carry.
// Strings without a zone are read in loc.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// actionInstant walks the accessor chain, then the id decode.
func actionInstant(a model.SecurityAction, loc *time.Location) (time.Time, string, bool) {
	for _, acc := range actionTimeAccessors {
		if t, ok := ParseTimestamp(acc.get(a), loc); ok {
			return t, acc.name, true
		}
	}
	if t, ok := ObjectIDTime(a.ID); ok {
		return t, "_id", true
	}
	return time.Time{}, "", false
}
