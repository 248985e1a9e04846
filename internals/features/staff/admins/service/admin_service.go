// file: internals/features/staff/admins/service/admin_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"hostel_admin_backend/internals/configs"
	"hostel_admin_backend/internals/features/staff/admins/dto"
	"hostel_admin_backend/internals/features/staff/admins/model"
	authHelper "hostel_admin_backend/internals/features/users/auth/helper"
)

// BuildAdmin hashes the password, generating one when the request left it
// empty. generated is returned so the caller can show it once.
func BuildAdmin(req dto.CreateAdminRequest, createdBy string) (admin model.AdminModel, generated string, err error) {
	pw := req.Password
	if pw == "" {
		if pw, err = authHelper.GeneratePassword(); err != nil {
			return admin, "", err
		}
		generated = pw
	} else if err = authHelper.ValidatePassword(pw); err != nil {
		return admin, "", err
	}

	hashed, err := authHelper.HashPassword(pw)
	if err != nil {
		return admin, "", err
	}
	admin = model.AdminModel{
		Password:    hashed,
		StaffFields: req.ToFields(createdBy),
	}
	return admin, generated, nil
}

// EnsureBootstrapAdmin creates the first admin from ADMIN_BOOTSTRAP_EMP_ID and
// ADMIN_BOOTSTRAP_PASSWORD when the admins table is empty.
func EnsureBootstrapAdmin(db *gorm.DB) error {
	empID := strings.TrimSpace(configs.GetEnv("ADMIN_BOOTSTRAP_EMP_ID"))
	password := configs.GetEnv("ADMIN_BOOTSTRAP_PASSWORD")
	if empID == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.AdminModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	req := dto.CreateAdminRequest{Password: password}
	req.EmpID = empID
	req.Name = configs.GetEnv("ADMIN_BOOTSTRAP_NAME", "Administrator")
	req.Email = strings.ToLower(configs.GetEnv("ADMIN_BOOTSTRAP_EMAIL", empID+"@localhost"))

	admin, _, err := BuildAdmin(req, "system")
	if err != nil {
		return errors.New("bootstrap admin: " + err.Error())
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("[INFO] bootstrap admin %s created", empID)
	return nil
}
