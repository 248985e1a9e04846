// file: internals/features/staff/wardens/controller/warden_controller.go
package controller

import (
	"errors"
	"log"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/constants"
	"hostel_admin_backend/internals/features/staff/shared"
	"hostel_admin_backend/internals/features/staff/wardens/dto"
	"hostel_admin_backend/internals/features/staff/wardens/model"
	helper "hostel_admin_backend/internals/helpers"
)

const kind = "Warden"

type WardenController struct {
	DB *gorm.DB
}

func NewWardenController(db *gorm.DB) *WardenController {
	return &WardenController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/a/wardens?role=senior_warden|warden&hostel_id=&active=&q=
func (ctrl *WardenController) List(c *fiber.Ctx) error {
	q, p := shared.ParseListQuery(c)
	role := strings.TrimSpace(c.Query("role"))
	if role != "" && !slices.Contains(constants.WardenRoles, role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "role must be senior_warden or warden")
	}
	hostel := strings.TrimSpace(c.Query("hostel_id"))

	rows, total, err := shared.ListStaff[model.WardenModel](ctrl.DB, q, func(tx *gorm.DB) *gorm.DB {
		if role != "" {
			tx = tx.Where("role = ?", role)
		}
		if hostel != "" {
			tx = tx.Where("? = ANY(hostel_id)", hostel)
		}
		return tx
	})
	if err != nil {
		return shared.RespondStoreError(c, kind, "list", err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

/* ===================== CREATE ===================== */
// POST /api/a/wardens
func (ctrl *WardenController) Create(c *fiber.Ctx) error {
	var req dto.CreateWardenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctrl.ensureHostels(req.HostelID); err != nil {
		return respondFiberError(c, err)
	}

	warden := req.ToModel(shared.CreatedBy(c))
	if err := ctrl.DB.Create(&warden).Error; err != nil {
		return shared.RespondStoreError(c, kind, "create", err)
	}
	return helper.JsonCreated(c, "Warden added successfully", warden)
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/wardens/:emp_id
func (ctrl *WardenController) Update(c *fiber.Ctx) error {
	var req dto.UpdateWardenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.HostelID != nil {
		if err := ctrl.ensureHostels(*req.HostelID); err != nil {
			return respondFiberError(c, err)
		}
	}

	warden, err := shared.UpdateByEmpID[model.WardenModel](ctrl.DB, c.Params("emp_id"), req.Changes())
	if err != nil {
		return shared.RespondStoreError(c, kind, "update", err)
	}
	return helper.JsonUpdated(c, "Warden updated successfully", warden)
}

/* ===================== SOFT DELETE / REACTIVATE ===================== */
// DELETE /api/a/wardens/:emp_id
func (ctrl *WardenController) Delete(c *fiber.Ctx) error {
	warden, err := shared.SetActive[model.WardenModel](ctrl.DB, c.Params("emp_id"), false)
	if err != nil {
		return shared.RespondStoreError(c, kind, "deactivate", err)
	}
	return helper.JsonDeleted(c, "Warden deactivated", warden)
}

// POST /api/a/wardens/:emp_id/reactivate
func (ctrl *WardenController) Reactivate(c *fiber.Ctx) error {
	warden, err := shared.SetActive[model.WardenModel](ctrl.DB, c.Params("emp_id"), true)
	if err != nil {
		return shared.RespondStoreError(c, kind, "reactivate", err)
	}
	return helper.JsonUpdated(c, "Warden reactivated", warden)
}

/* ===================== HOSTELS ===================== */
// GET /api/a/hostels
func (ctrl *WardenController) ListHostels(c *fiber.Ctx) error {
	var hostels []model.HostelModel
	if err := ctrl.DB.Order("hostel_id ASC").Find(&hostels).Error; err != nil {
		log.Printf("[ERROR] list hostels: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load hostels")
	}
	return helper.JsonOK(c, "ok", hostels)
}

// ensureHostels rejects ids that are not in the hostels table.
func (ctrl *WardenController) ensureHostels(ids []string) error {
	var found int64
	if err := ctrl.DB.Model(&model.HostelModel{}).Where("hostel_id IN ?", ids).Count(&found).Error; err != nil {
		log.Printf("[ERROR] check hostels: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check hostels")
	}
	if int(found) != len(ids) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Unknown hostel_id")
	}
	return nil
}

func respondFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
