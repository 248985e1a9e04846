package dto

import (
	"hostel_admin_backend/internals/features/staff/admins/model"
	"hostel_admin_backend/internals/features/staff/shared"
)

// CreateAdminRequest leaves password optional; a random one is issued when empty.
type CreateAdminRequest struct {
	shared.CreateStaffRequest
	Password string `json:"password" validate:"omitempty,min=8,max=72"`
}

type UpdateAdminRequest struct {
	shared.UpdateStaffRequest
}

// CreateAdminResponse carries the initial password only when the server generated it.
type CreateAdminResponse struct {
	Admin           model.AdminModel `json:"admin"`
	InitialPassword string           `json:"initial_password,omitempty"`
}
