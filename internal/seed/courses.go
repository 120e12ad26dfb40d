package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/campusconnect/backend/internal/model"
)

func strPtr(s string) *string { return &s }

// DefaultCourses is the catalog installed on a fresh database.
// Prerequisites come before the courses that reference them.
func DefaultCourses() []model.Course {
	return []model.Course{
		{
			ID:           "CSCI101-A",
			Dept:         "CSCI",
			Number:       101,
			Title:        "Intro to Programming",
			Credits:      3,
			Modality:     model.ModalityInPerson,
			MaxSeats:     30,
			Instructor:   "Dr. Smith",
			ScheduleText: "Mon/Wed 9:00-10:15",
			Location:     "Hibbs 120",
			SeatsUsed:    12,
			TuitionFee:   900,
		},
		{
			ID:           "INFO361-01",
			Dept:         "INFO",
			Number:       361,
			Title:        "Systems Analysis & Design",
			Credits:      3,
			PrereqID:     strPtr("CSCI101-A"),
			Modality:     model.ModalityInPerson,
			MaxSeats:     30,
			Instructor:   "Prof. Lee",
			ScheduleText: "Tue/Thu 11:00-12:15",
			Location:     "Snead 205",
			SeatsUsed:    30,
			TuitionFee:   1100,
		},
		{
			ID:           "CSCI245-B",
			Dept:         "CSCI",
			Number:       245,
			Title:        "Data Structures",
			Credits:      3,
			PrereqID:     strPtr("CSCI101-A"),
			Modality:     model.ModalityOnline,
			MaxSeats:     25,
			Instructor:   "Dr. Johnson",
			ScheduleText: "Asynchronous",
			Location:     "Canvas",
			SeatsUsed:    22,
			TuitionFee:   1050,
		},
	}
}

// LoadCourses reads a JSON array of courses from path.
func LoadCourses(path string) ([]model.Course, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var courses []model.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return courses, nil
}

// Validate reports every problem in a catalog at once.
func Validate(courses []model.Course) error {
	var errs error
	seen := make(map[string]bool, len(courses))

	for i, c := range courses {
		switch {
		case c.ID == "":
			errs = errors.Join(errs, fmt.Errorf("course #%d: missing id", i))
			continue
		case seen[c.ID]:
			errs = errors.Join(errs, fmt.Errorf("course %s: duplicate id", c.ID))
		}
		if c.MaxSeats < 0 || c.SeatsUsed < 0 || c.SeatsUsed > c.MaxSeats {
			errs = errors.Join(errs, fmt.Errorf("course %s: seats %d/%d out of range", c.ID, c.SeatsUsed, c.MaxSeats))
		}
		if c.TuitionFee < 0 {
			errs = errors.Join(errs, fmt.Errorf("course %s: negative tuition", c.ID))
		}
		if c.HasPrereq() && !seen[*c.PrereqID] {
			errs = errors.Join(errs, fmt.Errorf("course %s: prerequisite %s must be listed earlier", c.ID, *c.PrereqID))
		}
		seen[c.ID] = true
	}
	return errs
}
