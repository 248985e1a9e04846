package export

import (
	"hostel_admin_backend/internals/features/security/gatelog/model"
	"hostel_admin_backend/internals/features/security/gatelog/resolver"
)

// Header is the fixed column order of both encodings.
var Header = []string{
	"STUDENT DETAILS",
	"ENROLLMENT NO",
	"HOSTEL",
	"ROOM NO",
	"APPLIED FROM",
	"APPLIED TO",
	"REASON",
	"GATE OUT",
	"GATE IN",
}

const notApplicable = "N/A"

// ShapeRows turns requests into the string rows shared by xlsx and pdf.
func ShapeRows(requests []model.LeaveRequest, r resolver.Resolver) [][]string {
	rows := make([][]string, 0, len(requests))
	for _, req := range requests {
		gate := r.Resolve(req)
		rows = append(rows, []string{
			req.StudentInfo.Name,
			req.StudentEnrollmentNumber,
			req.StudentInfo.HostelName,
			req.StudentInfo.RoomNo,
			r.Format(req.AppliedFrom),
			r.FormatPtr(req.AppliedTo, notApplicable),
			req.Reason,
			gate.Out,
			gate.In,
		})
	}
	return rows
}
