package model

import (
	"time"

	"gorm.io/datatypes"
)

// Security status of a leave request at the hostel gate.
const (
	SecurityStatusPending = "pending"
	SecurityStatusOut     = "out"
	SecurityStatusIn      = "in"
)

const (
	RequestTypeOuting = "outing"
	RequestTypeLeave  = "leave"
)

type ActionBy struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	EmpID string `json:"emp_id"`
}

// SecurityAction is one logged gate event. The kind and the timestamps arrive
// under more than one spelling depending on which client wrote the record.
type SecurityAction struct {
	ID             string    `json:"_id,omitempty"`
	ActionBy       *ActionBy `json:"action_by,omitempty"`
	Action         string    `json:"action,omitempty"`
	SecurityStatus string    `json:"security_status,omitempty"`
	ActionTime     string    `json:"action_time,omitempty"`
	UpdatedAt      string    `json:"updated_at,omitempty"`
	UpdatedAtCamel string    `json:"updatedAt,omitempty"`
	CreatedAt      string    `json:"created_at,omitempty"`
	CreatedAtCamel string    `json:"createdAt,omitempty"`
}

// IsKind reports whether either kind field names the given status.
func (a SecurityAction) IsKind(status string) bool {
	return a.Action == status || a.SecurityStatus == status
}

// StudentInfo is denormalized into the request when it is created.
type StudentInfo struct {
	StudentID    string `json:"student_id"`
	EnrollmentNo string `json:"enrollment_no"`
	Name         string `json:"name"`
	ProfilePic   string `json:"profile_pic,omitempty"`
	Email        string `json:"email,omitempty"`
	PhoneNo      string `json:"phone_no,omitempty"`
	HostelID     string `json:"hostel_id,omitempty"`
	HostelName   string `json:"hostel_name"`
	RoomNo       string `json:"room_no"`
	Semester     int    `json:"semester,omitempty"`
	Branch       string `json:"branch,omitempty"`
}

// LeaveRequest is the read-only row the gate-log views work on.
type LeaveRequest struct {
	ID                      string           `json:"_id"`
	RequestID               string           `json:"request_id"`
	RequestType             string           `json:"request_type"`
	StudentEnrollmentNumber string           `json:"student_enrollment_number"`
	AppliedFrom             time.Time        `json:"applied_from"`
	AppliedTo               *time.Time       `json:"applied_to,omitempty"`
	Reason                  string           `json:"reason"`
	RequestStatus           string           `json:"request_status"`
	SecurityStatus          string           `json:"security_status"`
	Active                  bool             `json:"active"`
	SecurityGuardAction     []SecurityAction `json:"security_guard_action"`
	StudentInfo             StudentInfo      `json:"student_info"`
	AppliedAt               *time.Time       `json:"applied_at,omitempty"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
}

// LeaveRequestModel is the persisted form; actions and the student snapshot
// live in JSONB columns.
type LeaveRequestModel struct {
	LeaveRequestID          string                              `gorm:"column:leave_request_id;type:varchar(24);primaryKey" json:"_id"`
	RequestID               string                              `gorm:"column:request_id;type:varchar(64);not null;uniqueIndex" json:"request_id"`
	RequestType             string                              `gorm:"column:request_type;type:varchar(16);not null" json:"request_type"`
	StudentEnrollmentNumber string                              `gorm:"column:student_enrollment_number;type:varchar(32);not null;index" json:"student_enrollment_number"`
	AppliedFrom             time.Time                           `gorm:"column:applied_from;type:timestamptz;not null;index" json:"applied_from"`
	AppliedTo               *time.Time                          `gorm:"column:applied_to;type:timestamptz" json:"applied_to,omitempty"`
	Reason                  string                              `gorm:"column:reason;type:text" json:"reason"`
	RequestStatus           string                              `gorm:"column:request_status;type:varchar(24);not null;default:'pending'" json:"request_status"`
	SecurityStatus          string                              `gorm:"column:security_status;type:varchar(16);not null;default:'pending';index" json:"security_status"`
	Active                  bool                                `gorm:"column:active;not null;default:true" json:"active"`
	SecurityGuardAction     datatypes.JSONSlice[SecurityAction] `gorm:"column:security_guard_action;type:jsonb" json:"security_guard_action"`
	StudentInfo             datatypes.JSONType[StudentInfo]     `gorm:"column:student_info;type:jsonb" json:"student_info"`
	AppliedAt               *time.Time                          `gorm:"column:applied_at;type:timestamptz" json:"applied_at,omitempty"`
	CreatedAt               time.Time                           `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time                           `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}

func (m LeaveRequestModel) ToLeaveRequest() LeaveRequest {
	actions := make([]SecurityAction, len(m.SecurityGuardAction))
	copy(actions, m.SecurityGuardAction)
	return LeaveRequest{
		ID:                      m.LeaveRequestID,
		RequestID:               m.RequestID,
		RequestType:             m.RequestType,
		StudentEnrollmentNumber: m.StudentEnrollmentNumber,
		AppliedFrom:             m.AppliedFrom,
		AppliedTo:               m.AppliedTo,
		Reason:                  m.Reason,
		RequestStatus:           m.RequestStatus,
		SecurityStatus:          m.SecurityStatus,
		Active:                  m.Active,
		SecurityGuardAction:     actions,
		StudentInfo:             m.StudentInfo.Data(),
		AppliedAt:               m.AppliedAt,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}
