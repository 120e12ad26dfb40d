package model

import "time"

// Modality describes how a course section is delivered.
type Modality string

const (
	ModalityInPerson Modality = "In-person"
	ModalityHybrid   Modality = "Hybrid"
	ModalityOnline   Modality = "Online"
)

// Course is one section in the catalog. SeatsUsed only changes through
// registration and drop.
type Course struct {
	ID           string    `json:"id"`
	Dept         string    `json:"dept"`
	Number       int       `json:"number"`
	Title        string    `json:"title"`
	Credits      int       `json:"credits"`
	PrereqID     *string   `json:"prereq_id"`
	Modality     Modality  `json:"modality"`
	MaxSeats     int       `json:"max_seats"`
	Instructor   string    `json:"instructor"`
	ScheduleText string    `json:"schedule_text"`
	Location     string    `json:"location"`
	SeatsUsed    int       `json:"seats_used"`
	TuitionFee   float64   `json:"tuition_fee"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsFull reports whether every seat is taken.
func (c *Course) IsFull() bool {
	return c.SeatsUsed >= c.MaxSeats
}

// HasPrereq reports whether the course declares a prerequisite.
func (c *Course) HasPrereq() bool {
	return c.PrereqID != nil && *c.PrereqID != ""
}

// CourseFilter narrows a catalog search. Empty fields match everything.
type CourseFilter struct {
	Dept       string `form:"dept" json:"dept" binding:"omitempty,max=16"`
	Number     string `form:"number" json:"number" binding:"omitempty,numeric,max=6"`
	Instructor string `form:"instructor" json:"instructor" binding:"omitempty,max=100"`
	OpenOnly   bool   `form:"open_only" json:"open_only"`
}

// CourseSeats is the admin dashboard row for a course.
type CourseSeats struct {
	ID         string `json:"id"`
	Dept       string `json:"dept"`
	Number     int    `json:"number"`
	Title      string `json:"title"`
	Instructor string `json:"instructor"`
	SeatsUsed  int    `json:"seats_used"`
	MaxSeats   int    `json:"max_seats"`
}
