package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/campusconnect/backend/internal/model"
)

func TestDefaultCoursesAreValid(t *testing.T) {
	courses := DefaultCourses()
	if err := Validate(courses); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("len = %d, want 3", len(courses))
	}

	byID := make(map[string]model.Course)
	for _, c := range courses {
		byID[c.ID] = c
	}
	if c := byID["INFO361-01"]; !c.IsFull() {
		t.Errorf("INFO361-01 should start full, got %d/%d", c.SeatsUsed, c.MaxSeats)
	}
	if c := byID["CSCI101-A"]; c.TuitionFee != 900 || c.SeatsUsed != 12 || c.HasPrereq() {
		t.Errorf("unexpected CSCI101-A: %+v", c)
	}
}

func TestValidate(t *testing.T) {
	prereq := "LATER-1"
	tests := []struct {
		name    string
		courses []model.Course
		wantErr []string
	}{
		{
			name:    "missing id",
			courses: []model.Course{{MaxSeats: 1}},
			wantErr: []string{"missing id"},
		},
		{
			name:    "duplicate and overfull",
			courses: []model.Course{{ID: "A", MaxSeats: 1}, {ID: "A", MaxSeats: 1, SeatsUsed: 2}},
			wantErr: []string{"duplicate id", "out of range"},
		},
		{
			name:    "prerequisite order",
			courses: []model.Course{{ID: "B", MaxSeats: 5, PrereqID: &prereq}, {ID: "LATER-1", MaxSeats: 5}},
			wantErr: []string{"must be listed earlier"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.courses)
			if err == nil {
				t.Fatal("expected error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
		})
	}
}

func TestLoadCourses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `[{"id":"MATH200-A","dept":"MATH","number":200,"title":"Linear Algebra","credits":4,"max_seats":40,"tuition_fee":950.5}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	courses, err := LoadCourses(path)
	if err != nil {
		t.Fatalf("LoadCourses() = %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "MATH200-A" || courses[0].TuitionFee != 950.5 || courses[0].PrereqID != nil {
		t.Errorf("unexpected courses: %+v", courses)
	}

	if _, err := LoadCourses(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
