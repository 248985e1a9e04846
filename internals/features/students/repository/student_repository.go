// file: internals/features/students/repository/student_repository.go
package repository

import (
	"strings"

	"gorm.io/gorm"

	"hostel_admin_backend/internals/features/students/model"
	helper "hostel_admin_backend/internals/helpers"
)

// StudentRow is a student joined with the hostel name.
type StudentRow struct {
	model.StudentModel
	HostelName string `gorm:"column:hostel_name"`
}

func base(db *gorm.DB) *gorm.DB {
	return db.Table("students AS s").
		Select("s.*, h.hostel_name").
		Joins("LEFT JOIN hostels h ON h.hostel_id = s.hostel_id").
		Where("s.active = ?", true)
}

// SearchStudents matches q case-insensitively against name or enrollment number.
func SearchStudents(db *gorm.DB, q string, offset, limit int) ([]StudentRow, int64, error) {
	tx := base(db)
	if s := strings.TrimSpace(q); s != "" {
		like := helper.ContainsPattern(s)
		tx = tx.Where("(LOWER(s.name) LIKE ? OR LOWER(s.enrollment_no) LIKE ?)", like, like)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []StudentRow
	if err := tx.Order("s.name ASC").Offset(offset).Limit(limit).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func FindByEnrollment(db *gorm.DB, enrollment string) (*StudentRow, error) {
	var row StudentRow
	res := base(db).
		Where("LOWER(s.enrollment_no) = ?", strings.ToLower(strings.TrimSpace(enrollment))).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
