// file: internals/features/students/controller/student_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/features/students/dto"
	"hostel_admin_backend/internals/features/students/repository"
	helper "hostel_admin_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/a/students?q=&page=&per_page=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 30, 200)
	rows, total, err := repository.SearchStudents(ctrl.DB, c.Query("q"), p.Offset, p.Limit)
	if err != nil {
		log.Printf("[ERROR] list students: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", dto.ToCards(rows), &pg)
}

// GET /api/a/students/:enrollment
func (ctrl *StudentController) Detail(c *fiber.Ctx) error {
	enrollment := strings.TrimSpace(c.Params("enrollment"))
	if enrollment == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "enrollment is required")
	}
	row, err := repository.FindByEnrollment(ctrl.DB, enrollment)
	if err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[ERROR] student %s: %v", enrollment, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}
	return helper.JsonOK(c, "ok", dto.ToDetail(*row))
}
