package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "hostel_admin_backend/internals/features/staff/admins/route"
	guardRoute "hostel_admin_backend/internals/features/staff/security_guards/route"
	wardenRoute "hostel_admin_backend/internals/features/staff/wardens/route"
	studentRoute "hostel_admin_backend/internals/features/students/route"
)

// StaffAdminRoutes mounts staff management and the student roster on /api/a.
func StaffAdminRoutes(admin fiber.Router, db *gorm.DB) {
	adminRoute.AdminRoutes(admin, db)
	wardenRoute.WardenRoutes(admin, db)
	guardRoute.SecurityGuardRoutes(admin, db)
	studentRoute.StudentRoutes(admin, db)
}
