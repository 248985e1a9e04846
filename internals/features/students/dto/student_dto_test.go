package dto

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hostel_admin_backend/internals/features/students/model"
	"hostel_admin_backend/internals/features/students/repository"
)

func TestInitials(t *testing.T) {
	for in, want := range map[string]string{
		"Aarav Kumar Shah": "AKS",
		"  priya  ":        "P",
		"":                 "S",
		"élan vital":       "ÉV",
	} {
		if got := Initials(in); got != want {
			t.Errorf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToDetail(t *testing.T) {
	row := repository.StudentRow{
		StudentModel: model.StudentModel{
			StudentID:    uuid.MustParse("0b7e7f55-8d1e-4c8f-a3a8-5a1f4a1f9e01"),
			EnrollmentNo: "22BCS104",
			Name:         "Aarav Shah",
			HostelID:     "BH-2",
			RoomNo:       "214",
		},
	}
	d := ToDetail(row)
	if d.Hostel != "BH-2" || d.Room != "214" {
		t.Fatalf("hostel fallback: %+v", d)
	}
	if d.Parents == nil || len(d.Parents) != 0 {
		t.Fatalf("parents should be an empty list, got %#v", d.Parents)
	}

	row.HostelName = "Boys Hostel 2"
	row.Parents = datatypes.JSONSlice[model.Parent]{{Name: "Meena Shah", Relation: "Mother"}}
	d = ToDetail(row)
	if d.Hostel != "Boys Hostel 2" || len(d.Parents) != 1 || d.Parents[0].Relation != "Mother" {
		t.Fatalf("detail = %+v", d)
	}
}
