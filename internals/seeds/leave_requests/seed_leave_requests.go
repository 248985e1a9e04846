package leave_requests

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"

	gatelogModel "hostel_admin_backend/internals/features/security/gatelog/model"
	"hostel_admin_backend/internals/seeds/fixture"
)

// SeedLeaveRequestsFromJSON inserts sample requests; rows without an _id get
// a fresh ObjectID so the identifier fallback has something to decode.
func SeedLeaveRequestsFromJSON(db *gorm.DB, filePath string) (int, error) {
	rows, err := fixture.ReadJSON[gatelogModel.LeaveRequestModel](filePath)
	if err != nil {
		return 0, err
	}

	var existing []string
	if err := db.Model(&gatelogModel.LeaveRequestModel{}).Pluck("request_id", &existing).Error; err != nil {
		return 0, err
	}
	fresh := fixture.NewOnly(rows, existing, func(r gatelogModel.LeaveRequestModel) string { return r.RequestID })
	if len(fresh) == 0 {
		return 0, nil
	}
	for i := range fresh {
		if fresh[i].LeaveRequestID == "" {
			fresh[i].LeaveRequestID = primitive.NewObjectID().Hex()
		}
		if fresh[i].SecurityStatus == "" {
			fresh[i].SecurityStatus = gatelogModel.SecurityStatusPending
		}
		fresh[i].Active = true
	}
	return len(fresh), db.CreateInBatches(&fresh, 100).Error
}
