package students

import (
	"gorm.io/gorm"

	studentModel "hostel_admin_backend/internals/features/students/model"
	"hostel_admin_backend/internals/seeds/fixture"
)

func SeedStudentsFromJSON(db *gorm.DB, filePath string) (int, error) {
	rows, err := fixture.ReadJSON[studentModel.StudentModel](filePath)
	if err != nil {
		return 0, err
	}

	var existing []string
	if err := db.Model(&studentModel.StudentModel{}).Pluck("enrollment_no", &existing).Error; err != nil {
		return 0, err
	}
	fresh := fixture.NewOnly(rows, existing, func(s studentModel.StudentModel) string { return s.EnrollmentNo })
	if len(fresh) == 0 {
		return 0, nil
	}
	for i := range fresh {
		fresh[i].Active = true
	}
	return len(fresh), db.CreateInBatches(&fresh, 100).Error
}
