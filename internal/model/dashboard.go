package model

// DashboardSummary holds the admin dashboard counters.
type DashboardSummary struct {
	TotalCourses       int     `json:"total_courses"`
	TotalStudents      int     `json:"total_students"`
	TotalRegistrations int     `json:"total_registrations"`
	TotalCollected     float64 `json:"total_collected"`
}

// Dashboard is the admin dashboard view.
type Dashboard struct {
	Summary DashboardSummary `json:"summary"`
	Courses []CourseSeats    `json:"courses"`
}
