package dto

import (
	"hostel_admin_backend/internals/features/students/model"
	"hostel_admin_backend/internals/features/students/repository"
)

// StudentCard is one tile of the roster.
type StudentCard struct {
	StudentID    string `json:"student_id"`
	Name         string `json:"name"`
	EnrollmentNo string `json:"enrollment_no"`
	ProfilePic   string `json:"profile_pic,omitempty"`
	Initials     string `json:"initials"`
}

type StudentDetail struct {
	StudentID    string         `json:"student_id"`
	Name         string         `json:"name"`
	EnrollmentNo string         `json:"enrollment_no"`
	ProfilePic   string         `json:"profile_pic,omitempty"`
	Email        string         `json:"email"`
	PhoneNo      string         `json:"phone_no"`
	HostelID     string         `json:"hostel_id"`
	Hostel       string         `json:"hostel"`
	Room         string         `json:"room"`
	Semester     int            `json:"semester,omitempty"`
	Branch       string         `json:"branch"`
	Course       string         `json:"course"`
	GuardianName string         `json:"guardian_name"`
	Parents      []model.Parent `json:"parents"`
}

func ToCard(r repository.StudentRow) StudentCard {
	return StudentCard{
		StudentID:    r.StudentID.String(),
		Name:         r.Name,
		EnrollmentNo: r.EnrollmentNo,
		ProfilePic:   r.ProfilePic,
		Initials:     Initials(r.Name),
	}
}

func ToCards(rows []repository.StudentRow) []StudentCard {
	out := make([]StudentCard, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToCard(r))
	}
	return out
}

func ToDetail(r repository.StudentRow) StudentDetail {
	hostel := r.HostelName
	if hostel == "" {
		hostel = r.HostelID
	}
	parents := []model.Parent(r.Parents)
	if parents == nil {
		parents = []model.Parent{}
	}
	return StudentDetail{
		StudentID:    r.StudentID.String(),
		Name:         r.Name,
		EnrollmentNo: r.EnrollmentNo,
		ProfilePic:   r.ProfilePic,
		Email:        r.Email,
		PhoneNo:      r.PhoneNo,
		HostelID:     r.HostelID,
		Hostel:       hostel,
		Room:         r.RoomNo,
		Semester:     r.Semester,
		Branch:       r.Branch,
		Course:       r.Course,
		GuardianName: r.GuardianName,
		Parents:      parents,
	}
}
