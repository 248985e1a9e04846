package hostels

import (
	"gorm.io/gorm"

	wardenModel "hostel_admin_backend/internals/features/staff/wardens/model"
	"hostel_admin_backend/internals/seeds/fixture"
)

func SeedHostelsFromJSON(db *gorm.DB, filePath string) (int, error) {
	rows, err := fixture.ReadJSON[wardenModel.HostelModel](filePath)
	if err != nil {
		return 0, err
	}

	var existing []string
	if err := db.Model(&wardenModel.HostelModel{}).Pluck("hostel_id", &existing).Error; err != nil {
		return 0, err
	}
	fresh := fixture.NewOnly(rows, existing, func(h wardenModel.HostelModel) string { return h.HostelID })
	if len(fresh) == 0 {
		return 0, nil
	}
	return len(fresh), db.Create(&fresh).Error
}
