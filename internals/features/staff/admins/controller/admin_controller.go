// file: internals/features/staff/admins/controller/admin_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/features/staff/admins/dto"
	"hostel_admin_backend/internals/features/staff/admins/model"
	"hostel_admin_backend/internals/features/staff/admins/service"
	"hostel_admin_backend/internals/features/staff/shared"
	helper "hostel_admin_backend/internals/helpers"
	helpersAuth "hostel_admin_backend/internals/helpers/auth"
)

const kind = "Admin"

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/a/admins?active=&q=&page=&per_page=
func (ctrl *AdminController) List(c *fiber.Ctx) error {
	q, p := shared.ParseListQuery(c)
	rows, total, err := shared.ListStaff[model.AdminModel](ctrl.DB, q, nil)
	if err != nil {
		return shared.RespondStoreError(c, kind, "list", err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

/* ===================== CREATE ===================== */
// POST /api/a/admins
func (ctrl *AdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	admin, generated, err := service.BuildAdmin(req, shared.CreatedBy(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		return shared.RespondStoreError(c, kind, "create", err)
	}
	return helper.JsonCreated(c, "Admin added successfully", dto.CreateAdminResponse{
		Admin:           admin,
		InitialPassword: generated,
	})
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/admins/:emp_id
func (ctrl *AdminController) Update(c *fiber.Ctx) error {
	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	empID := c.Params("emp_id")
	if req.Active != nil && !*req.Active && isSelf(c, empID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot deactivate your own account")
	}

	admin, err := shared.UpdateByEmpID[model.AdminModel](ctrl.DB, empID, req.Changes())
	if err != nil {
		return shared.RespondStoreError(c, kind, "update", err)
	}
	return helper.JsonUpdated(c, "Admin updated successfully", admin)
}

/* ===================== SOFT DELETE / REACTIVATE ===================== */
// DELETE /api/a/admins/:emp_id
func (ctrl *AdminController) Delete(c *fiber.Ctx) error {
	empID := c.Params("emp_id")
	if isSelf(c, empID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot deactivate your own account")
	}
	admin, err := shared.SetActive[model.AdminModel](ctrl.DB, empID, false)
	if err != nil {
		return shared.RespondStoreError(c, kind, "deactivate", err)
	}
	return helper.JsonDeleted(c, "Admin deactivated", admin)
}

// POST /api/a/admins/:emp_id/reactivate
func (ctrl *AdminController) Reactivate(c *fiber.Ctx) error {
	admin, err := shared.SetActive[model.AdminModel](ctrl.DB, c.Params("emp_id"), true)
	if err != nil {
		return shared.RespondStoreError(c, kind, "reactivate", err)
	}
	return helper.JsonUpdated(c, "Admin reactivated", admin)
}

func isSelf(c *fiber.Ctx, empID string) bool {
	me := helpersAuth.GetCurrentUser(c).EmpID
	return me != "" && strings.EqualFold(me, strings.TrimSpace(empID))
}
