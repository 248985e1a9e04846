package details

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/configs"
	"hostel_admin_backend/internals/features/security/gatelog/controller"
	"hostel_admin_backend/internals/features/security/gatelog/export"
	"hostel_admin_backend/internals/features/security/gatelog/repository"
	"hostel_admin_backend/internals/features/security/gatelog/resolver"
	securityRoute "hostel_admin_backend/internals/features/security/gatelog/route"
)

// SecurityAdminRoutes mounts the gate-log views on /api/a.
func SecurityAdminRoutes(admin fiber.Router, db *gorm.DB) {
	r := resolver.New(configs.Location(), resolver.ParseSlotStrategy(configs.SlotMode))
	log.Printf("[INFO] Gate-time slots: %s, timezone %s", r.Strategy, r.Loc())

	var archive export.Sink
	if dir := configs.GetEnv("EXPORT_ARCHIVE_DIR"); dir != "" {
		archive = export.DirSink{Dir: dir}
		log.Printf("[INFO] Exports archived to %s", dir)
	}

	ctrl := controller.NewSecurityController(repository.NewLeaveRequestRepository(db), r, archive)
	securityRoute.SecurityRoutes(admin, ctrl)
}
