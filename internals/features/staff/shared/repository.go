// file: internals/features/staff/shared/repository.go
package shared

import (
	"strings"

	"gorm.io/gorm"

	helper "hostel_admin_backend/internals/helpers"
)

// ListQuery is what the staff list endpoints accept.
type ListQuery struct {
	Active *bool
	Search string
	Offset int
	Limit  int
}

// ListStaff pages through any table embedding StaffFields, newest first.
// scope may add table specific filters and can be nil.
func ListStaff[T any](db *gorm.DB, q ListQuery, scope func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	tx := db.Model(new(T))
	if q.Active != nil {
		tx = tx.Where("active = ?", *q.Active)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := helper.ContainsPattern(s)
		tx = tx.Where("(LOWER(name) LIKE ? OR LOWER(emp_id) LIKE ? OR LOWER(email) LIKE ?)", like, like, like)
	}
	if scope != nil {
		tx = scope(tx)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []T
	if q.Limit > 0 {
		tx = tx.Offset(q.Offset).Limit(q.Limit)
	}
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func FindByEmpID[T any](db *gorm.DB, empID string) (*T, error) {
	var row T
	if err := db.Where("emp_id = ?", strings.TrimSpace(empID)).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateByEmpID writes changes and returns the fresh row. An empty change set
// only reloads.
func UpdateByEmpID[T any](db *gorm.DB, empID string, changes map[string]any) (*T, error) {
	if len(changes) > 0 {
		res := db.Model(new(T)).Where("emp_id = ?", empID).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return FindByEmpID[T](db, empID)
}

// SetActive is soft delete (false) and reactivate (true).
func SetActive[T any](db *gorm.DB, empID string, active bool) (*T, error) {
	return UpdateByEmpID[T](db, empID, map[string]any{"active": active})
}
