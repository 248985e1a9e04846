package service

import (
	"fmt"

	"hostel_admin_backend/internals/features/security/gatelog/model"
	"hostel_admin_backend/internals/features/security/gatelog/resolver"
)

const (
	ColStudent  = "STUDENT DETAILS"
	ColHostel   = "HOSTEL & ROOM"
	ColDuration = "APPLIED DURATION"
	ColGateLogs = "GATE LOGS"
	ColReason   = "REASON"
	ColAction   = "ACTION"
)

// TableOptions picks the optional columns. ActionType is "out", "in" or empty.
type TableOptions struct {
	ActionType    string
	ShowActualOut bool
	ShowActualIn  bool
}

type GateCell struct {
	Display string `json:"display"`
	Muted   bool   `json:"muted"`
}

// TableAction is the button of a row; pressing it posts to Endpoint.
type TableAction struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Label     string `json:"label"`
	Endpoint  string `json:"endpoint"`
}

type TableRow struct {
	RequestID     string       `json:"request_id"`
	StudentName   string       `json:"student_name"`
	Enrollment    string       `json:"enrollment_no"`
	ProfilePic    string       `json:"profile_pic,omitempty"`
	Hostel        string       `json:"hostel"`
	Room          string       `json:"room"`
	AppliedFrom   string       `json:"applied_from"`
	AppliedTo     string       `json:"applied_to"`
	RequestType   string       `json:"request_type"`
	Reason        string       `json:"reason"`
	GateOut       *GateCell    `json:"gate_out,omitempty"`
	GateIn        *GateCell    `json:"gate_in,omitempty"`
	Action        *TableAction `json:"action,omitempty"`
	SecurityState string       `json:"security_status"`
}

type Table struct {
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
	Empty   bool       `json:"empty"`
}

// ActionEndpoint is the path the row action posts to, relative to the
// security group.
func ActionEndpoint(requestID string) string {
	return fmt.Sprintf("/requests/%s/action", requestID)
}

// BuildTable lays out rows with the same resolver the exports use.
func BuildTable(rows []model.LeaveRequest, opts TableOptions, r resolver.Resolver) Table {
	showGate := opts.ShowActualOut || opts.ShowActualIn
	withAction := opts.ActionType == model.SecurityStatusOut || opts.ActionType == model.SecurityStatusIn

	cols := []string{ColStudent, ColHostel, ColDuration}
	if showGate {
		cols = append(cols, ColGateLogs)
	}
	cols = append(cols, ColReason)
	if withAction {
		cols = append(cols, ColAction)
	}

	t := Table{Columns: cols, Rows: make([]TableRow, 0, len(rows)), Empty: len(rows) == 0}
	for _, req := range rows {
		row := TableRow{
			RequestID:     req.RequestID,
			StudentName:   req.StudentInfo.Name,
			Enrollment:    req.StudentEnrollmentNumber,
			ProfilePic:    req.StudentInfo.ProfilePic,
			Hostel:        req.StudentInfo.HostelName,
			Room:          req.StudentInfo.RoomNo,
			AppliedFrom:   r.Format(req.AppliedFrom),
			AppliedTo:     r.FormatPtr(req.AppliedTo, "N/A"),
			RequestType:   req.RequestType,
			Reason:        req.Reason,
			SecurityState: req.SecurityStatus,
		}

		if showGate {
			g := r.Resolve(req)
			if opts.ShowActualOut {
				row.GateOut = &GateCell{
					Display: g.Out,
					Muted:   g.OutAction == nil && req.SecurityStatus == model.SecurityStatusPending,
				}
			}
			if opts.ShowActualIn {
				row.GateIn = &GateCell{
					Display: g.In,
					Muted:   g.InAction == nil && req.SecurityStatus != model.SecurityStatusIn,
				}
			}
		}

		if withAction {
			label := "Mark Out"
			if opts.ActionType == model.SecurityStatusIn {
				label = "Mark In"
			}
			row.Action = &TableAction{
				RequestID: req.RequestID,
				Status:    opts.ActionType,
				Label:     label,
				Endpoint:  ActionEndpoint(req.RequestID),
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
