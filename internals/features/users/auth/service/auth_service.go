package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/configs"
	authHelper "hostel_admin_backend/internals/features/users/auth/helper"
	authRepo "hostel_admin_backend/internals/features/users/auth/repository"
	helper "hostel_admin_backend/internals/helpers"
	helpersAuth "hostel_admin_backend/internals/helpers/auth"
)

type LoginInput struct {
	EmpID    string `json:"emp_id"`
	Password string `json:"password"`
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.EmpID = strings.TrimSpace(input.EmpID)
	if err := authHelper.ValidateLoginInput(input.EmpID, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	admin, err := authRepo.FindAdminByEmpID(db, input.EmpID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] login lookup %s: %v", input.EmpID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid employee id or password")
	}
	if err := authHelper.CheckPasswordHash(admin.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid employee id or password")
	}
	if !admin.Active {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an administrator.")
	}

	now := time.Now().UTC()
	token, expiresAt, err := IssueAccessToken(*admin, configs.JWTSecret, now, configs.JWTTTL)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  expiresAt,
	})

	log.Printf("[INFO] admin %s signed in", admin.EmpID)
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   expiresAt,
		"user":         admin,
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	token := helpersAuth.GetRawAccessToken(c)
	if token != "" {
		var adminID *uuid.UUID
		if id, err := helpersAuth.GetUserIDFromLocals(c); err == nil {
			adminID = &id
		}
		ttl := ResolveBlacklistTTL(token, configs.JWTSecret, time.Now())
		if err := authRepo.BlacklistToken(db, token, adminID, ttl); err != nil {
			log.Printf("[WARN] blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] logout without access token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
	return helper.JsonOK(c, "Logout successful", nil)
}

// ========================== ME ==========================
// GET /api/auth/me
func Me(db *gorm.DB, c *fiber.Ctx) error {
	adminID, err := helpersAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	admin, err := authRepo.FindAdminByID(db, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return helper.JsonOK(c, "ok", admin)
}

// ========================== CHANGE PASSWORD ==========================
// POST /api/auth/change-password
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := authHelper.ValidatePassword(input.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	adminID, err := helpersAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	admin, err := authRepo.FindAdminByID(db, adminID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err := authHelper.CheckPasswordHash(admin.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := authRepo.UpdateAdminPassword(db, admin.AdminID, hashed); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
