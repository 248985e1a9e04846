package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/features/staff/wardens/controller"
)

// WardenRoutes serves both the wardens and assistant wardens screens;
// they differ only in ?role=.
func WardenRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWardenController(db)

	r.Get("/hostels", ctrl.ListHostels)

	g := r.Group("/wardens")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Patch("/:emp_id", ctrl.Update)
	g.Delete("/:emp_id", ctrl.Delete)
	g.Post("/:emp_id/reactivate", ctrl.Reactivate)
}
