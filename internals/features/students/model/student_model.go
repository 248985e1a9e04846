package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Parent struct {
	Name    string `json:"name"`
	Relation string `json:"relation"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type StudentModel struct {
	StudentID    uuid.UUID                   `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	EnrollmentNo string                      `gorm:"column:enrollment_no;type:varchar(32);not null;uniqueIndex" json:"enrollment_no"`
	Name         string                      `gorm:"column:name;type:varchar(120);not null;index" json:"name"`
	Email        string                      `gorm:"column:email;type:varchar(150)" json:"email"`
	PhoneNo      string                      `gorm:"column:phone_no;type:varchar(20)" json:"phone_no"`
	ProfilePic   string                      `gorm:"column:profile_pic;type:text" json:"profile_pic"`
	HostelID     string                      `gorm:"column:hostel_id;type:varchar(32);index" json:"hostel_id"`
	RoomNo       string                      `gorm:"column:room_no;type:varchar(16)" json:"room_no"`
	Semester     int                         `gorm:"column:semester" json:"semester"`
	Branch       string                      `gorm:"column:branch;type:varchar(80)" json:"branch"`
	Course       string                      `gorm:"column:course;type:varchar(80)" json:"course"`
	GuardianName string                      `gorm:"column:guardian_name;type:varchar(120)" json:"guardian_name"`
	Parents      datatypes.JSONSlice[Parent] `gorm:"column:parents;type:jsonb;not null;default:'[]'" json:"parents"`
	Active       bool                        `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt    time.Time                   `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
