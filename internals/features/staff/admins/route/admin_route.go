package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/features/staff/admins/controller"
)

// AdminRoutes mounts /admins on an already authenticated admin group.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)

	g := r.Group("/admins")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Patch("/:emp_id", ctrl.Update)
	g.Delete("/:emp_id", ctrl.Delete)
	g.Post("/:emp_id/reactivate", ctrl.Reactivate)
}
