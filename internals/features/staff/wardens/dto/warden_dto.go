// file: internals/features/staff/wardens/dto/warden_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"github.com/lib/pq"

	"hostel_admin_backend/internals/features/staff/shared"
	"hostel_admin_backend/internals/features/staff/wardens/model"
)

// HostelIDs accepts a single id or a list; the warden dialog sends a single
// value on create and a list on update.
type HostelIDs []string

func (h *HostelIDs) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*h = HostelIDs{one}.clean()
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*h = HostelIDs(many).clean()
	return nil
}

func (h HostelIDs) clean() HostelIDs {
	out := make(HostelIDs, 0, len(h))
	seen := map[string]bool{}
	for _, id := range h {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

/* ===================== CREATE ===================== */

type CreateWardenRequest struct {
	shared.CreateStaffRequest
	WardenType string    `json:"wardenType" validate:"required,oneof=senior_warden warden"`
	HostelID   HostelIDs `json:"hostel_id" validate:"required,min=1"`
}

func (r CreateWardenRequest) ToModel(createdBy string) model.WardenModel {
	return model.WardenModel{
		HostelID:    pq.StringArray(r.HostelID),
		Role:        r.WardenType,
		StaffFields: r.ToFields(createdBy),
	}
}

/* ===================== UPDATE ===================== */

type UpdateWardenRequest struct {
	shared.UpdateStaffRequest
	HostelID *HostelIDs `json:"hostel_id" validate:"omitempty,min=1"`
}

func (r UpdateWardenRequest) Changes() map[string]any {
	out := r.UpdateStaffRequest.Changes()
	if r.HostelID != nil {
		out["hostel_id"] = pq.StringArray(*r.HostelID)
	}
	return out
}
