package model

import (
	"github.com/google/uuid"

	"hostel_admin_backend/internals/features/staff/shared"
)

type AdminModel struct {
	AdminID  uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`
	Password string    `gorm:"column:password;type:varchar(100);not null" json:"-"`

	shared.StaffFields `gorm:"embedded"`
}

func (AdminModel) TableName() string {
	return "admins"
}
