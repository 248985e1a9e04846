// file: internals/features/staff/security_guards/controller/security_guard_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/features/staff/security_guards/dto"
	"hostel_admin_backend/internals/features/staff/security_guards/model"
	"hostel_admin_backend/internals/features/staff/shared"
	helper "hostel_admin_backend/internals/helpers"
)

const kind = "Security guard"

type SecurityGuardController struct {
	DB *gorm.DB
}

func NewSecurityGuardController(db *gorm.DB) *SecurityGuardController {
	return &SecurityGuardController{DB: db}
}

// GET /api/a/security-guards
func (ctrl *SecurityGuardController) List(c *fiber.Ctx) error {
	q, p := shared.ParseListQuery(c)
	rows, total, err := shared.ListStaff[model.SecurityGuardModel](ctrl.DB, q, nil)
	if err != nil {
		return shared.RespondStoreError(c, kind, "list", err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// POST /api/a/security-guards
func (ctrl *SecurityGuardController) Create(c *fiber.Ctx) error {
	var req dto.CreateSecurityGuardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	guard := req.ToModel(shared.CreatedBy(c))
	if err := ctrl.DB.Create(&guard).Error; err != nil {
		return shared.RespondStoreError(c, kind, "create", err)
	}
	return helper.JsonCreated(c, "Security guard added successfully", guard)
}

// PATCH /api/a/security-guards/:emp_id
func (ctrl *SecurityGuardController) Update(c *fiber.Ctx) error {
	var req dto.UpdateSecurityGuardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	guard, err := shared.UpdateByEmpID[model.SecurityGuardModel](ctrl.DB, c.Params("emp_id"), req.Changes())
	if err != nil {
		return shared.RespondStoreError(c, kind, "update", err)
	}
	return helper.JsonUpdated(c, "Security guard updated successfully", guard)
}

// DELETE /api/a/security-guards/:emp_id
func (ctrl *SecurityGuardController) Delete(c *fiber.Ctx) error {
	guard, err := shared.SetActive[model.SecurityGuardModel](ctrl.DB, c.Params("emp_id"), false)
	if err != nil {
		return shared.RespondStoreError(c, kind, "deactivate", err)
	}
	return helper.JsonDeleted(c, "Security guard deactivated", guard)
}

// POST /api/a/security-guards/:emp_id/reactivate
func (ctrl *SecurityGuardController) Reactivate(c *fiber.Ctx) error {
	guard, err := shared.SetActive[model.SecurityGuardModel](ctrl.DB, c.Params("emp_id"), true)
	if err != nil {
		return shared.RespondStoreError(c, kind, "reactivate", err)
	}
	return helper.JsonUpdated(c, "Security guard reactivated", guard)
}
