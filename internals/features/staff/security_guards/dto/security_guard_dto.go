package dto

import (
	"hostel_admin_backend/internals/features/staff/security_guards/model"
	"hostel_admin_backend/internals/features/staff/shared"
)

type CreateSecurityGuardRequest struct {
	shared.CreateStaffRequest
}

func (r CreateSecurityGuardRequest) ToModel(createdBy string) model.SecurityGuardModel {
	return model.SecurityGuardModel{StaffFields: r.ToFields(createdBy)}
}

type UpdateSecurityGuardRequest struct {
	shared.UpdateStaffRequest
}
