package service

import (
	"testing"

	"hostel_admin_backend/internals/features/staff/admins/dto"
	authHelper "hostel_admin_backend/internals/features/users/auth/helper"
)

func newReq(pw string) dto.CreateAdminRequest {
	req := dto.CreateAdminRequest{Password: pw}
	req.EmpID = "ADM002"
	req.Name = "Ravi"
	req.PhoneNo = "9876543210"
	req.Email = "ravi@hostel.edu"
	return req
}

func TestBuildAdminGeneratesPassword(t *testing.T) {
	admin, generated, err := BuildAdmin(newReq(""), "ADM001")
	if err != nil {
		t.Fatal(err)
	}
	if generated == "" {
		t.Fatal("no initial password returned")
	}
	if authHelper.CheckPasswordHash(admin.Password, generated) != nil {
		t.Fatal("stored hash does not match generated password")
	}
	if admin.CreatedBy != "ADM001" || !admin.Active || admin.EmpID != "ADM002" {
		t.Fatalf("admin = %+v", admin)
	}
}

func TestBuildAdminWithPassword(t *testing.T) {
	admin, generated, err := BuildAdmin(newReq("gatepass42"), "ADM001")
	if err != nil {
		t.Fatal(err)
	}
	if generated != "" {
		t.Fatal("supplied password must not be echoed back")
	}
	if authHelper.CheckPasswordHash(admin.Password, "gatepass42") != nil {
		t.Fatal("hash mismatch")
	}

	if _, _, err := BuildAdmin(newReq("weakpassword"), "ADM001"); err == nil {
		t.Fatal("password without digits accepted")
	}
}
