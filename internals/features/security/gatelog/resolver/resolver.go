// Package resolver derives display-ready gate-out / gate-in times from the
// loosely structured action history of a leave request.
package resolver

import (
	"time"

	"hostel_admin_backend/internals/features/security/gatelog/model"
)

// SlotStrategy decides how unlabelled actions fill the out/in slots.
type SlotStrategy int

const (
	// CompatSlots keeps the legacy heuristic: with no labelled "out" the first
	// action is taken as out, with no labelled "in" the second action is taken
	// as in. Histories longer than two get no further tie-break.
	CompatSlots SlotStrategy = iota
	// StrictSlots only ever uses actions whose kind says out or in.
	StrictSlots
)

func (s SlotStrategy) String() string {
	if s == StrictSlots {
		return "strict"
	}
	return "compat"
}

// ParseSlotStrategy maps a config value; anything unknown is compat.
func ParseSlotStrategy(v string) SlotStrategy {
	if v == "strict" {
		return StrictSlots
	}
	return CompatSlots
}

// GateTimes is the result for one request.
type GateTimes struct {
	Out       string `json:"out"`
	In        string `json:"in"`
	OutKnown  bool   `json:"out_known"`
	InKnown   bool   `json:"in_known"`
	OutSource string `json:"out_source,omitempty"`
	InSource  string `json:"in_source,omitempty"`

	OutAction *model.SecurityAction `json:"-"`
	InAction  *model.SecurityAction `json:"-"`
}

type Resolver struct {
	Location *time.Location
	Strategy SlotStrategy
}

func New(loc *time.Location, strategy SlotStrategy) Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return Resolver{Location: loc, Strategy: strategy}
}

// Loc is the display location, UTC when unset.
func (r Resolver) Loc() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}

// Format renders an instant in the resolver's location.
func (r Resolver) Format(t time.Time) string {
	return t.In(r.Loc()).Format(DisplayLayout)
}

// FormatPtr renders t, or fallback when t is nil or zero.
func (r Resolver) FormatPtr(t *time.Time, fallback string) string {
	if t == nil || t.IsZero() {
		return fallback
	}
	return r.Format(*t)
}

// Slots partitions the history into the out and in candidates.
func (r Resolver) Slots(actions []model.SecurityAction) (out, in *model.SecurityAction) {
	for i := range actions {
		if out == nil && actions[i].IsKind(model.SecurityStatusOut) {
			out = &actions[i]
		}
		if in == nil && actions[i].IsKind(model.SecurityStatusIn) {
			in = &actions[i]
		}
	}
	if r.Strategy == StrictSlots {
		return out, in
	}
	if out == nil && len(actions) > 0 {
		out = &actions[0]
	}
	if in == nil && len(actions) > 1 {
		in = &actions[1]
	}
	return out, in
}

// Resolve never fails; missing evidence renders as Unresolved.
func (r Resolver) Resolve(req model.LeaveRequest) GateTimes {
	outAction, inAction := r.Slots(req.SecurityGuardAction)
	g := GateTimes{Out: Unresolved, In: Unresolved, OutAction: outAction, InAction: inAction}

	left := req.SecurityStatus == model.SecurityStatusOut || req.SecurityStatus == model.SecurityStatusIn
	back := req.SecurityStatus == model.SecurityStatusIn

	if t, src, ok := r.slotInstant(outAction, req, left); ok {
		g.Out, g.OutKnown, g.OutSource = r.Format(t), true, src
	}
	if t, src, ok := r.slotInstant(inAction, req, back); ok {
		g.In, g.InKnown, g.InSource = r.Format(t), true, src
	}
	return g
}

func (r Resolver) slotInstant(a *model.SecurityAction, req model.LeaveRequest, docFallback bool) (time.Time, string, bool) {
	if a != nil {
		if t, src, ok := actionInstant(*a, r.Loc()); ok {
			return t, src, true
		}
	}
	if docFallback && !req.UpdatedAt.IsZero() {
		return req.UpdatedAt, "document.updated_at", true
	}
	return time.Time{}, "", false
}
