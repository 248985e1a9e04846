package seeds

import (
	"fmt"
	"log"
	"path/filepath"

	"gorm.io/gorm"

	"hostel_admin_backend/internals/seeds/hostels"
	leaveRequests "hostel_admin_backend/internals/seeds/leave_requests"
	"hostel_admin_backend/internals/seeds/students"
)

// RunAllSeeds loads the JSON fixtures under dir. Rows whose key already
// exists are skipped, so it is safe to run on every start.
func RunAllSeeds(db *gorm.DB, dir string) error {
	steps := []struct {
		name string
		run  func(*gorm.DB, string) (int, error)
		file string
	}{
		{"hostels", hostels.SeedHostelsFromJSON, "data_hostels.json"},
		{"students", students.SeedStudentsFromJSON, "data_students.json"},
		{"leave_requests", leaveRequests.SeedLeaveRequestsFromJSON, "data_leave_requests.json"},
	}
	for _, s := range steps {
		path := filepath.Join(dir, s.name, s.file)
		n, err := s.run(db, path)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
		log.Printf("[SEED] %s: %d new rows", s.name, n)
	}
	return nil
}
