package shared

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestCreateStaffRequestValidation(t *testing.T) {
	v := validator.New()
	ok := CreateStaffRequest{EmpID: " EMP01 ", Name: " Kiran ", PhoneNo: "9876543210", Email: " Kiran@Hostel.EDU "}
	ok.Normalize()
	if err := v.Struct(ok); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if ok.EmpID != "EMP01" || ok.Email != "kiran@hostel.edu" {
		t.Fatalf("normalize = %+v", ok)
	}

	bad := []CreateStaffRequest{
		{Name: "Kiran", PhoneNo: "9876543210", Email: "k@h.edu"},
		{EmpID: "E1", Name: "Kiran", PhoneNo: "98-76", Email: "k@h.edu"},
		{EmpID: "E1", Name: "Kiran", PhoneNo: "9876543210", Email: "not-an-email"},
	}
	for i, r := range bad {
		if err := v.Struct(r); err == nil {
			t.Errorf("case %d accepted", i)
		}
	}
}

func TestUpdateStaffRequest(t *testing.T) {
	name := "  Priya  "
	inactive := false
	r := UpdateStaffRequest{Name: &name, Active: &inactive}
	r.Normalize()

	ch := r.Changes()
	if len(ch) != 2 || ch["name"] != "Priya" || ch["active"] != false {
		t.Fatalf("changes = %v", ch)
	}

	f := StaffFields{Name: "Old", Email: "keep@h.edu", Active: true}
	r.Apply(&f)
	if f.Name != "Priya" || f.Email != "keep@h.edu" || f.Active {
		t.Fatalf("apply = %+v", f)
	}
}

func TestActiveFilter(t *testing.T) {
	if p := ActiveFilter(""); p == nil || !*p {
		t.Fatal("default should be active only")
	}
	if p := ActiveFilter("false"); p == nil || *p {
		t.Fatal("false should list inactive")
	}
	if p := ActiveFilter("ALL"); p != nil {
		t.Fatal("all should not filter")
	}
}
