// file: internals/features/security/gatelog/repository/leave_request_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel_admin_backend/internals/features/security/gatelog/model"
)

var (
	ErrRequestNotFound   = errors.New("leave request not found")
	ErrInvalidTransition = errors.New("invalid security status transition")
	ErrRequestInactive   = errors.New("leave request is not active")
)

// nextStatus lists the only moves a guard can make.
var nextStatus = map[string]string{
	model.SecurityStatusPending: model.SecurityStatusOut,
	model.SecurityStatusOut:     model.SecurityStatusIn,
}

// Store is what the gate-log handlers need from persistence.
type Store interface {
	ListBySecurityStatus(ctx context.Context, status string) ([]model.LeaveRequest, error)
	ApplyAction(ctx context.Context, requestID, status string, by model.ActionBy) (model.LeaveRequest, error)
}

type LeaveRequestRepository struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewLeaveRequestRepository(db *gorm.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{DB: db, Now: time.Now}
}

/* ====================== READ ====================== */

// ListBySecurityStatus returns active requests, newest applied_from first.
func (r *LeaveRequestRepository) ListBySecurityStatus(ctx context.Context, status string) ([]model.LeaveRequest, error) {
	var rows []model.LeaveRequestModel
	if err := r.DB.WithContext(ctx).
		Where("active = ? AND security_status = ?", true, status).
		Order("applied_from DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]model.LeaveRequest, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ToLeaveRequest())
	}
	return out, nil
}

func (r *LeaveRequestRepository) FindByRequestID(ctx context.Context, requestID string) (*model.LeaveRequestModel, error) {
	var m model.LeaveRequestModel
	if err := r.DB.WithContext(ctx).Where("request_id = ?", requestID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &m, nil
}

/* ====================== WRITE ====================== */

// ApplyAction records a guard's out/in action and moves the security status.
func (r *LeaveRequestRepository) ApplyAction(ctx context.Context, requestID, status string, by model.ActionBy) (model.LeaveRequest, error) {
	var result model.LeaveRequest
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.LeaveRequestModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("request_id = ?", requestID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if !m.Active {
			return ErrRequestInactive
		}
		if err := CheckTransition(m.SecurityStatus, status); err != nil {
			return err
		}

		stamp := r.Now().UTC().Format(time.RFC3339)
		action := model.SecurityAction{
			ID:             primitive.NewObjectID().Hex(),
			ActionBy:       &by,
			Action:         status,
			SecurityStatus: status,
			ActionTime:     stamp,
			CreatedAt:      stamp,
			UpdatedAt:      stamp,
		}
		m.SecurityGuardAction = append(m.SecurityGuardAction, action)
		m.SecurityStatus = status

		if err := tx.Model(&m).
			Select("security_status", "security_guard_action", "updated_at").
			Updates(&m).Error; err != nil {
			return err
		}
		result = m.ToLeaveRequest()
		return nil
	})
	return result, err
}

// CheckTransition allows pending→out and out→in only.
func CheckTransition(from, to string) error {
	if next, ok := nextStatus[from]; ok && next == to {
		return nil
	}
	return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, from, to)
}
