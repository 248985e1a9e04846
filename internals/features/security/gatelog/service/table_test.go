package service

import (
	"reflect"
	"testing"
	"time"

	"hostel_admin_backend/internals/features/security/gatelog/model"
	"hostel_admin_backend/internals/features/security/gatelog/resolver"
)

func TestBuildTableColumns(t *testing.T) {
	r := resolver.New(time.UTC, resolver.CompatSlots)
	cases := []struct {
		name string
		opts TableOptions
		want []string
	}{
		{"pending view", TableOptions{ActionType: "out"}, []string{ColStudent, ColHostel, ColDuration, ColReason, ColAction}},
		{"out view", TableOptions{ActionType: "in", ShowActualOut: true}, []string{ColStudent, ColHostel, ColDuration, ColGateLogs, ColReason, ColAction}},
		{"in view", TableOptions{ShowActualOut: true, ShowActualIn: true}, []string{ColStudent, ColHostel, ColDuration, ColGateLogs, ColReason}},
		{"unknown action", TableOptions{ActionType: "cancel"}, []string{ColStudent, ColHostel, ColDuration, ColReason}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildTable(nil, tc.opts, r)
			if !reflect.DeepEqual(got.Columns, tc.want) {
				t.Fatalf("columns = %v, want %v", got.Columns, tc.want)
			}
			if !got.Empty || len(got.Rows) != 0 {
				t.Fatalf("empty table = %+v", got)
			}
		})
	}
}

func TestBuildTableGateCells(t *testing.T) {
	r := resolver.New(time.UTC, resolver.CompatSlots)
	updated := at(t, "2024-01-15T18:00:00Z")
	rows := []model.LeaveRequest{
		{RequestID: "P", SecurityStatus: model.SecurityStatusPending, UpdatedAt: updated},
		{
			RequestID:      "O",
			SecurityStatus: model.SecurityStatusOut,
			UpdatedAt:      updated,
			SecurityGuardAction: []model.SecurityAction{
				{Action: "out", ActionTime: "2024-01-15T14:05:00Z"},
			},
		},
		{RequestID: "I", SecurityStatus: model.SecurityStatusIn, UpdatedAt: updated},
	}

	tbl := BuildTable(rows, TableOptions{ShowActualOut: true, ShowActualIn: true}, r)
	if tbl.Empty || len(tbl.Rows) != 3 {
		t.Fatalf("table = %+v", tbl)
	}

	want := []struct {
		out, in           string
		outMuted, inMuted bool
	}{
		{resolver.Unresolved, resolver.Unresolved, true, true},
		{"15/01/2024, 02:05 pm", resolver.Unresolved, false, true},
		{"15/01/2024, 06:00 pm", "15/01/2024, 06:00 pm", false, false},
	}
	for i, w := range want {
		row := tbl.Rows[i]
		if row.GateOut == nil || row.GateIn == nil {
			t.Fatalf("row %s: missing gate cells", row.RequestID)
		}
		if row.GateOut.Display != w.out || row.GateOut.Muted != w.outMuted {
			t.Errorf("row %s out = %+v, want %q muted=%v", row.RequestID, *row.GateOut, w.out, w.outMuted)
		}
		if row.GateIn.Display != w.in || row.GateIn.Muted != w.inMuted {
			t.Errorf("row %s in = %+v, want %q muted=%v", row.RequestID, *row.GateIn, w.in, w.inMuted)
		}
		if row.Action != nil {
			t.Errorf("row %s has an action without an action type", row.RequestID)
		}
	}
}

func TestBuildTableActionAndDuration(t *testing.T) {
	r := resolver.New(time.UTC, resolver.CompatSlots)
	to := at(t, "2024-01-16T20:00:00Z")
	rows := []model.LeaveRequest{
		{RequestID: "REQ-9", AppliedFrom: at(t, "2024-01-15T09:00:00Z"), AppliedTo: &to, SecurityStatus: model.SecurityStatusPending},
		{RequestID: "REQ-10", AppliedFrom: at(t, "2024-01-15T10:00:00Z"), SecurityStatus: model.SecurityStatusPending},
	}
	tbl := BuildTable(rows, TableOptions{ActionType: "out"}, r)

	first := tbl.Rows[0]
	if first.AppliedFrom != "15/01/2024, 09:00 am" || first.AppliedTo != "16/01/2024, 08:00 pm" {
		t.Fatalf("duration = %q .. %q", first.AppliedFrom, first.AppliedTo)
	}
	if tbl.Rows[1].AppliedTo != "N/A" {
		t.Fatalf("open ended = %q", tbl.Rows[1].AppliedTo)
	}
	if first.GateOut != nil || first.GateIn != nil {
		t.Fatal("gate cells rendered without being requested")
	}
	if first.Action == nil || first.Action.Status != "out" || first.Action.Endpoint != "/requests/REQ-9/action" || first.Action.Label != "Mark Out" {
		t.Fatalf("action = %+v", first.Action)
	}
}
