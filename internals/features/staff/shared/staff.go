// file: internals/features/staff/shared/staff.go
package shared

import (
	"strings"
	"time"
)

// StaffFields are the columns every staff table carries.
type StaffFields struct {
	EmpID     string    `gorm:"column:emp_id;type:varchar(32);not null;uniqueIndex" json:"emp_id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	PhoneNo   string    `gorm:"column:phone_no;type:varchar(20)" json:"phone_no"`
	Email     string    `gorm:"column:email;type:varchar(150);uniqueIndex" json:"email"`
	CreatedBy string    `gorm:"column:created_by;type:varchar(32)" json:"created_by"`
	Active    bool      `gorm:"column:active;not null;default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

/* =========================================================
   CREATE
========================================================= */

type CreateStaffRequest struct {
	EmpID   string `json:"emp_id" validate:"required,min=2,max=32"`
	Name    string `json:"name" validate:"required,min=2,max=100"`
	PhoneNo string `json:"phone_no" validate:"required,numeric,min=7,max=15"`
	Email   string `json:"email" validate:"required,email,max=150"`
}

func (r *CreateStaffRequest) Normalize() {
	r.EmpID = strings.TrimSpace(r.EmpID)
	r.Name = strings.TrimSpace(r.Name)
	r.PhoneNo = strings.TrimSpace(r.PhoneNo)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r CreateStaffRequest) ToFields(createdBy string) StaffFields {
	return StaffFields{
		EmpID:     r.EmpID,
		Name:      r.Name,
		PhoneNo:   r.PhoneNo,
		Email:     r.Email,
		CreatedBy: createdBy,
		Active:    true,
	}
}

/* =========================================================
   PARTIAL UPDATE (nil → unchanged)
   Sending only {"active": false} is the soft delete.
========================================================= */

type UpdateStaffRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=100"`
	PhoneNo *string `json:"phone_no" validate:"omitempty,numeric,min=7,max=15"`
	Email   *string `json:"email" validate:"omitempty,email,max=150"`
	Active  *bool   `json:"active"`
}

func (r *UpdateStaffRequest) Normalize() {
	trim := func(p *string) {
		if p != nil {
			v := strings.TrimSpace(*p)
			*p = v
		}
	}
	trim(r.Name)
	trim(r.PhoneNo)
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
}

// Changes returns the column updates for the fields that were sent.
func (r UpdateStaffRequest) Changes() map[string]any {
	out := map[string]any{}
	if r.Name != nil {
		out["name"] = *r.Name
	}
	if r.PhoneNo != nil {
		out["phone_no"] = *r.PhoneNo
	}
	if r.Email != nil {
		out["email"] = *r.Email
	}
	if r.Active != nil {
		out["active"] = *r.Active
	}
	return out
}

// Apply copies the sent fields onto f.
func (r UpdateStaffRequest) Apply(f *StaffFields) {
	if r.Name != nil {
		f.Name = *r.Name
	}
	if r.PhoneNo != nil {
		f.PhoneNo = *r.PhoneNo
	}
	if r.Email != nil {
		f.Email = *r.Email
	}
	if r.Active != nil {
		f.Active = *r.Active
	}
}

// ActiveFilter reads ?active=true|false|all; the default lists active staff.
func ActiveFilter(v string) *bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "all":
		return nil
	case "false", "0", "inactive":
		f := false
		return &f
	}
	t := true
	return &t
}
