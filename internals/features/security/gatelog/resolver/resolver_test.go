package resolver

import (
	"testing"
	"time"

	"hostel_admin_backend/internals/features/security/gatelog/model"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestObjectIDTime(t *testing.T) {
	cases := []struct {
		id   string
		ok   bool
		unix int64
	}{
		{"507f191e810c19729de860ea", true, 1350506782},
		{"507F191E810C19729DE860EA", true, 1350506782},
		{"507f191e810c19729de860e", false, 0},
		{"507f191e810c19729de860ezz", false, 0},
		{"zz7f191e810c19729de860ea", false, 0},
		{"", false, 0},
	}
	for _, tc := range cases {
		got, ok := ObjectIDTime(tc.id)
		if ok != tc.ok {
			t.Errorf("ObjectIDTime(%q) ok=%v, want %v", tc.id, ok, tc.ok)
			continue
		}
		if ok && got.Unix() != tc.unix {
			t.Errorf("ObjectIDTime(%q) = %d, want %d", tc.id, got.Unix(), tc.unix)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		raw  string
		ok   bool
		want string
	}{
		{"2024-01-10T08:15:00Z", true, "2024-01-10T08:15:00Z"},
		{"2024-01-10T08:15:00.123Z", true, "2024-01-10T08:15:00.123Z"},
		{"2024-01-10T13:45:00+05:30", true, "2024-01-10T08:15:00Z"},
		{"2024-01-10 08:15:00", true, "2024-01-10T08:15:00Z"},
		{"2024-01-10", true, "2024-01-10T00:00:00Z"},
		{"  ", false, ""},
		{"not a date", false, ""},
	}
	for _, tc := range cases {
		got, ok := ParseTimestamp(tc.raw, time.UTC)
		if ok != tc.ok {
			t.Errorf("ParseTimestamp(%q) ok=%v, want %v", tc.raw, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(mustTime(t, tc.want)) {
			t.Errorf("ParseTimestamp(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestResolveExplicitOutActionTime(t *testing.T) {
	r := New(time.UTC, CompatSlots)
	req := model.LeaveRequest{
		SecurityStatus: model.SecurityStatusOut,
		UpdatedAt:      mustTime(t, "2024-02-01T10:00:00Z"),
		SecurityGuardAction: []model.SecurityAction{
			{
				ID:         "507f191e810c19729de860ea",
				Action:     "out",
				ActionTime: "2024-01-15T14:05:00Z",
				UpdatedAt:  "2024-01-16T09:00:00Z",
				CreatedAt:  "2024-01-14T09:00:00Z",
			},
		},
	}
	got := r.Resolve(req)
	if got.Out != "15/01/2024, 02:05 pm" {
		t.Fatalf("Out = %q", got.Out)
	}
	if got.OutSource != "action_time" {
		t.Fatalf("OutSource = %q", got.OutSource)
	}
	if got.In != Unresolved {
		t.Fatalf("In = %q, want unresolved for status out", got.In)
	}
}

func TestResolvePendingWithoutActions(t *testing.T) {
	r := New(time.UTC, CompatSlots)
	got := r.Resolve(model.LeaveRequest{
		SecurityStatus: model.SecurityStatusPending,
		UpdatedAt:      mustTime(t, "2024-02-01T10:00:00Z"),
	})
	if got.Out != Unresolved || got.In != Unresolved {
		t.Fatalf("got %q / %q, want both %q", got.Out, got.In, Unresolved)
	}
	if got.OutKnown || got.InKnown {
		t.Fatal("nothing should be known")
	}
}

func TestResolveDocumentFallback(t *testing.T) {
	r := New(time.UTC, CompatSlots)
	updated := mustTime(t, "2024-03-05T18:30:00Z")

	in := r.Resolve(model.LeaveRequest{SecurityStatus: model.SecurityStatusIn, UpdatedAt: updated})
	if in.In != "05/03/2024, 06:30 pm" || in.Out != "05/03/2024, 06:30 pm" {
		t.Fatalf("status in: got %q / %q", in.Out, in.In)
	}
	if in.InSource != "document.updated_at" {
		t.Fatalf("InSource = %q", in.InSource)
	}

	out := r.Resolve(model.LeaveRequest{SecurityStatus: model.SecurityStatusOut, UpdatedAt: updated})
	if out.Out != "05/03/2024, 06:30 pm" || out.In != Unresolved {
		t.Fatalf("status out: got %q / %q", out.Out, out.In)
	}

	zero := r.Resolve(model.LeaveRequest{SecurityStatus: model.SecurityStatusIn})
	if zero.Out != Unresolved || zero.In != Unresolved {
		t.Fatalf("zero updated_at: got %q / %q", zero.Out, zero.In)
	}
}

func TestResolveFallbackChainOrder(t *testing.T) {
	r := New(time.UTC, CompatSlots)
	cases := []struct {
		name   string
		action model.SecurityAction
		want   string
		source string
	}{
		{"updated_at", model.SecurityAction{Action: "out", UpdatedAt: "2024-01-02T01:00:00Z", UpdatedAtCamel: "2024-01-03T01:00:00Z"}, "02/01/2024, 01:00 am", "updated_at"},
		{"updatedAt", model.SecurityAction{Action: "out", UpdatedAtCamel: "2024-01-03T01:00:00Z", CreatedAt: "2024-01-04T01:00:00Z"}, "03/01/2024, 01:00 am", "updatedAt"},
		{"created_at", model.SecurityAction{Action: "out", CreatedAt: "2024-01-04T01:00:00Z", CreatedAtCamel: "2024-01-05T01:00:00Z"}, "04/01/2024, 01:00 am", "created_at"},
		{"createdAt", model.SecurityAction{Action: "out", CreatedAtCamel: "2024-01-05T13:00:00Z"}, "05/01/2024, 01:00 pm", "createdAt"},
		{"unparseable skipped", model.SecurityAction{Action: "out", ActionTime: "garbage", CreatedAt: "2024-01-04T01:00:00Z"}, "04/01/2024, 01:00 am", "created_at"},
		{"object id", model.SecurityAction{Action: "out", ID: "507f191e810c19729de860ea"}, "17/10/2012, 08:46 pm", "_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Resolve(model.LeaveRequest{
				SecurityStatus:      model.SecurityStatusPending,
				SecurityGuardAction: []model.SecurityAction{tc.action},
			})
			if got.Out != tc.want {
				t.Fatalf("Out = %q, want %q", got.Out, tc.want)
			}
			if got.OutSource != tc.source {
				t.Fatalf("OutSource = %q, want %q", got.OutSource, tc.source)
			}
		})
	}
}

func TestResolveMalformedActionFallsThrough(t *testing.T) {
	r := New(time.UTC, CompatSlots)
	updated := mustTime(t, "2024-03-05T18:30:00Z")
	got := r.Resolve(model.LeaveRequest{
		SecurityStatus:      model.SecurityStatusIn,
		UpdatedAt:           updated,
		SecurityGuardAction: []model.SecurityAction{{Action: "out", ID: "not-an-object-id"}, {SecurityStatus: "in", ID: "abc"}},
	})
	if got.Out != "05/03/2024, 06:30 pm" || got.In != "05/03/2024, 06:30 pm" {
		t.Fatalf("got %q / %q", got.Out, got.In)
	}
}

func TestSlotsKindCheckedOnBothFields(t *testing.T) {
	r := New(time.UTC, CompatSlots)
	actions := []model.SecurityAction{
		{ID: "a", SecurityStatus: "in"},
		{ID: "b", Action: "out"},
	}
	out, in := r.Slots(actions)
	if out == nil || out.ID != "b" {
		t.Fatalf("out = %+v", out)
	}
	if in == nil || in.ID != "a" {
		t.Fatalf("in = %+v", in)
	}
}

// The positional fallback can misattribute entries; this pins the legacy
// behaviour rather than endorsing it.
func TestSlotsCompatHeuristicKnownAmbiguity(t *testing.T) {
	r := New(time.UTC, CompatSlots)

	out, in := r.Slots([]model.SecurityAction{{ID: "first"}, {ID: "second"}, {ID: "third"}})
	if out == nil || out.ID != "first" || in == nil || in.ID != "second" {
		t.Fatalf("unlabelled: out=%+v in=%+v", out, in)
	}

	// labelled "in" first: out falls back to index 0, the same entry.
	out, in = r.Slots([]model.SecurityAction{{ID: "only-in", Action: "in"}})
	if out == nil || out.ID != "only-in" || in == nil || in.ID != "only-in" {
		t.Fatalf("single labelled in: out=%+v in=%+v", out, in)
	}

	out, in = r.Slots(nil)
	if out != nil || in != nil {
		t.Fatal("empty history must not fill any slot")
	}
}

func TestSlotsStrict(t *testing.T) {
	r := New(time.UTC, StrictSlots)
	out, in := r.Slots([]model.SecurityAction{{ID: "first"}, {ID: "second"}})
	if out != nil || in != nil {
		t.Fatalf("strict should ignore unlabelled: out=%+v in=%+v", out, in)
	}
	out, in = r.Slots([]model.SecurityAction{{ID: "x"}, {ID: "y", Action: "in"}})
	if out != nil || in == nil || in.ID != "y" {
		t.Fatalf("strict labelled: out=%+v in=%+v", out, in)
	}
}

func TestFormatMinuteGranularity(t *testing.T) {
	r := New(time.UTC, CompatSlots)
	instant := mustTime(t, "2024-07-09T21:07:59Z")
	s := r.Format(instant)
	back, err := time.ParseInLocation(DisplayLayout, s, time.UTC)
	if err != nil {
		t.Fatalf("re-parse %q: %v", s, err)
	}
	if !back.Equal(instant.Truncate(time.Minute)) {
		t.Fatalf("round trip %s -> %q -> %s", instant, s, back)
	}
}

func TestFormatUsesLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+30*60)
	r := New(loc, CompatSlots)
	if got := r.Format(mustTime(t, "2024-01-10T20:00:00Z")); got != "11/01/2024, 01:30 am" {
		t.Fatalf("got %q", got)
	}
}
