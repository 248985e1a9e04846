package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/features/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	g := r.Group("/students")
	g.Get("/", ctrl.List)
	g.Get("/:enrollment", ctrl.Detail)
}
