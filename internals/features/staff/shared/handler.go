// file: internals/features/staff/shared/handler.go
package shared

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "hostel_admin_backend/internals/helpers"
	helpersAuth "hostel_admin_backend/internals/helpers/auth"
)

// ParseListQuery reads ?active=, ?q= and the paging params.
func ParseListQuery(c *fiber.Ctx) (ListQuery, helper.Paging) {
	p := helper.ResolvePaging(c, 20, 200)
	return ListQuery{
		Active: ActiveFilter(c.Query("active")),
		Search: c.Query("q"),
		Offset: p.Offset,
		Limit:  p.Limit,
	}, p
}

// CreatedBy is the emp_id recorded on new staff rows.
func CreatedBy(c *fiber.Ctx) string {
	if u := helpersAuth.GetCurrentUser(c); u.EmpID != "" {
		return u.EmpID
	}
	return "system"
}

// RespondStoreError maps repository errors for a staff kind ("Admin", "Warden", ...).
func RespondStoreError(c *fiber.Ctx, kind, op string, err error) error {
	switch {
	case helper.IsNotFound(err):
		return helper.JsonError(c, fiber.StatusNotFound, kind+" not found")
	case helper.IsUniqueViolation(err):
		return helper.JsonError(c, fiber.StatusConflict, kind+" with this emp_id or email already exists")
	}
	log.Printf("[ERROR] %s %s: %v", op, kind, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to "+op+" "+kind)
}
