package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/features/staff/security_guards/controller"
)

func SecurityGuardRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSecurityGuardController(db)

	g := r.Group("/security-guards")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Patch("/:emp_id", ctrl.Update)
	g.Delete("/:emp_id", ctrl.Delete)
	g.Post("/:emp_id/reactivate", ctrl.Reactivate)
}
