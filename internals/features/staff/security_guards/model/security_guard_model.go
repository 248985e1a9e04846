package model

import (
	"github.com/google/uuid"

	"hostel_admin_backend/internals/features/staff/shared"
)

type SecurityGuardModel struct {
	SecurityGuardID uuid.UUID `gorm:"column:security_guard_id;type:uuid;default:gen_random_uuid();primaryKey" json:"security_guard_id"`

	shared.StaffFields `gorm:"embedded"`
}

func (SecurityGuardModel) TableName() string {
	return "security_guards"
}
