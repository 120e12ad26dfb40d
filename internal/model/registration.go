package model

import "time"

// Registration links a student to a course. Unique per (student, course).
type Registration struct {
	ID           int64     `json:"reg_id"`
	StudentID    string    `json:"student_id"`
	CourseID     string    `json:"course_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// RosterEntry is one enrolled student on an admin course roster.
// Name is empty when the student row is missing.
type RosterEntry struct {
	StudentID    string    `json:"student_id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
}

// CourseRoster is a course together with its enrolled students.
type CourseRoster struct {
	Course   *Course       `json:"course"`
	Students []RosterEntry `json:"students"`
}
