package route

import (
	"github.com/gofiber/fiber/v2"

	"hostel_admin_backend/internals/features/security/gatelog/controller"
	rateLimiter "hostel_admin_backend/internals/middlewares"
)

// SecurityRoutes mounts the gate-log views under /security.
func SecurityRoutes(r fiber.Router, ctrl *controller.SecurityController) {
	g := r.Group("/security")

	g.Get("/requests/:view/export", rateLimiter.ExportRateLimiter(), ctrl.ExportRequests)
	g.Get("/requests/:view", ctrl.ListRequests)
	g.Post("/requests/:request_id/action", ctrl.ApplyAction)

	// older clients
	g.Put("/request/update-status", ctrl.UpdateStatus)
}
