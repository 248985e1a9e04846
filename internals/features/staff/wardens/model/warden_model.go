package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"hostel_admin_backend/internals/constants"
	"hostel_admin_backend/internals/features/staff/shared"
)

const (
	WardenRoleSenior = constants.RoleSeniorWarden
	WardenRoleAsst   = constants.RoleWarden
)

type WardenModel struct {
	WardenID uuid.UUID      `gorm:"column:warden_id;type:uuid;default:gen_random_uuid();primaryKey" json:"warden_id"`
	HostelID pq.StringArray `gorm:"column:hostel_id;type:text[];not null;default:'{}'" json:"hostel_id"`
	Role     string         `gorm:"column:role;type:varchar(20);not null;index" json:"role"`

	shared.StaffFields `gorm:"embedded"`
}

func (WardenModel) TableName() string {
	return "wardens"
}

// HostelModel is the lookup the warden dialog picks hostels from.
type HostelModel struct {
	HostelID   string `gorm:"column:hostel_id;type:varchar(32);primaryKey" json:"hostel_id"`
	HostelName string `gorm:"column:hostel_name;type:varchar(100);not null" json:"hostel_name"`
	Gender     string `gorm:"column:gender;type:varchar(10)" json:"gender,omitempty"`
	Capacity   int    `gorm:"column:capacity" json:"capacity,omitempty"`
}

func (HostelModel) TableName() string {
	return "hostels"
}
