package service_test

import (
	"context"
	"testing"

	"github.com/campusconnect/backend/internal/model"
)

func courseIDs(courses []model.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearch(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		filter model.CourseFilter
		want   []string
	}{
		{name: "everything", want: []string{"CSCI101-A", "CSCI245-B", "INFO361-01"}},
		{name: "dept lowercase", filter: model.CourseFilter{Dept: "csci"}, want: []string{"CSCI101-A", "CSCI245-B"}},
		{name: "dept substring", filter: model.CourseFilter{Dept: "NF"}, want: []string{"INFO361-01"}},
		{name: "number substring", filter: model.CourseFilter{Number: "1"}, want: []string{"CSCI101-A", "INFO361-01"}},
		{name: "instructor any case", filter: model.CourseFilter{Instructor: "LEE"}, want: []string{"INFO361-01"}},
		{name: "open only", filter: model.CourseFilter{OpenOnly: true}, want: []string{"CSCI101-A", "CSCI245-B"}},
		{name: "combined no match", filter: model.CourseFilter{Dept: "INFO", Number: "245"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.catalog.Search(context.Background(), tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			if ids := courseIDs(got); !equalIDs(ids, tt.want) {
				t.Errorf("Search() = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestForStudent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.registration.Register(ctx, "S1", "CSCI101-A"); err != nil {
		t.Fatal(err)
	}

	got, err := f.catalog.ForStudent(ctx, "S1")
	if err != nil {
		t.Fatal(err)
	}
	if ids := courseIDs(got.Enrolled); !equalIDs(ids, []string{"CSCI101-A"}) {
		t.Errorf("enrolled = %v", ids)
	}
	if ids := courseIDs(got.Available); !equalIDs(ids, []string{"CSCI245-B", "INFO361-01"}) {
		t.Errorf("available = %v", ids)
	}
}

func TestSeedKeepsSeatUsage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.registration.Register(ctx, "S1", "CSCI101-A"); err != nil {
		t.Fatal(err)
	}

	updated := model.Course{ID: "CSCI101-A", Dept: "CSCI", Number: 101, Title: "Programming I", MaxSeats: 35, SeatsUsed: 0, TuitionFee: 950}
	if err := f.catalog.Seed(ctx, []model.Course{updated}); err != nil {
		t.Fatal(err)
	}

	c := f.course(t, "CSCI101-A")
	if c.SeatsUsed != 13 || c.Title != "Programming I" || c.MaxSeats != 35 || c.TuitionFee != 950 {
		t.Errorf("unexpected course after reseed: %+v", c)
	}
}
