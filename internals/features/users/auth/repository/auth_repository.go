// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	adminModel "hostel_admin_backend/internals/features/staff/admins/model"
	authModel "hostel_admin_backend/internals/features/users/auth/model"
)

/* ====================== ADMIN ====================== */

func FindAdminByEmpID(db *gorm.DB, empID string) (*adminModel.AdminModel, error) {
	var admin adminModel.AdminModel
	if err := db.Where("emp_id = ?", empID).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func FindAdminByID(db *gorm.DB, adminID uuid.UUID) (*adminModel.AdminModel, error) {
	var admin adminModel.AdminModel
	if err := db.Where("admin_id = ?", adminID).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func UpdateAdminPassword(db *gorm.DB, adminID uuid.UUID, hashed string) error {
	return db.Model(&adminModel.AdminModel{}).
		Where("admin_id = ?", adminID).
		Update("password", hashed).Error
}

/* ====================== BLACKLIST ====================== */

// BlacklistToken is idempotent: a token already listed is left alone.
func BlacklistToken(db *gorm.DB, token string, adminID *uuid.UUID, ttl time.Duration) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&authModel.TokenBlacklist{
		Token:     token,
		AdminID:   adminID,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

// CleanupExpiredBlacklist removes up to limit entries that expired before cutoff.
func CleanupExpiredBlacklist(db *gorm.DB, cutoff time.Time, limit int) (int64, error) {
	sub := db.Model(&authModel.TokenBlacklist{}).
		Select("id").
		Where("expired_at < ?", cutoff).
		Limit(limit)
	res := db.Unscoped().Where("id IN (?)", sub).Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
