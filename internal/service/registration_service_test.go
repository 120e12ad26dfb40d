package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/repository/memory"
	"github.com/campusconnect/backend/internal/service"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(t *testing.T, f *fixture)
		courseID  string
		wantErr   error
		wantSeats int
	}{
		{
			name:      "open course without prerequisite",
			courseID:  "CSCI101-A",
			wantSeats: 13,
		},
		{
			name:     "unknown course",
			courseID: "NOPE999",
			wantErr:  service.ErrCourseNotFound,
		},
		{
			name:      "prerequisite missing",
			courseID:  "CSCI245-B",
			wantErr:   service.ErrPrerequisiteUnmet,
			wantSeats: 22,
		},
		{
			name: "prerequisite met",
			setup: func(t *testing.T, f *fixture) {
				if _, err := f.registration.Register(ctx, "S1", "CSCI101-A"); err != nil {
					t.Fatal(err)
				}
			},
			courseID:  "CSCI245-B",
			wantSeats: 23,
		},
		{
			name: "full course",
			setup: func(t *testing.T, f *fixture) {
				if _, err := f.registration.Register(ctx, "S1", "CSCI101-A"); err != nil {
					t.Fatal(err)
				}
			},
			courseID:  "INFO361-01",
			wantErr:   service.ErrCourseFull,
			wantSeats: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(t, f)
			}

			reg, err := f.registration.Register(ctx, "S1", tt.courseID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Register() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Register() error = %v", err)
				}
				if reg.StudentID != "S1" || reg.CourseID != tt.courseID || reg.ID == 0 {
					t.Errorf("unexpected registration: %+v", reg)
				}
			}

			if errors.Is(tt.wantErr, service.ErrCourseNotFound) {
				return
			}
			if got := f.course(t, tt.courseID).SeatsUsed; got != tt.wantSeats {
				t.Errorf("seats_used = %d, want %d", got, tt.wantSeats)
			}
		})
	}
}

func TestRegisterPrerequisiteErrorNamesCourse(t *testing.T) {
	f := newFixture(t)

	_, err := f.registration.Register(context.Background(), "S1", "CSCI245-B")

	var pe *service.PrerequisiteError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *PrerequisiteError", err)
	}
	if pe.PrereqID != "CSCI101-A" || pe.CourseID != "CSCI245-B" {
		t.Errorf("unexpected prerequisite error: %+v", pe)
	}
}

func TestRegisterTwiceIncrementsOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.registration.Register(ctx, "S1", "CSCI101-A"); err != nil {
		t.Fatal(err)
	}
	_, err := f.registration.Register(ctx, "S1", "CSCI101-A")
	if !errors.Is(err, service.ErrAlreadyRegistered) {
		t.Fatalf("second Register() error = %v, want ErrAlreadyRegistered", err)
	}

	if got := f.course(t, "CSCI101-A").SeatsUsed; got != 13 {
		t.Errorf("seats_used = %d, want 13", got)
	}
	if got := f.rosterSize(t, "CSCI101-A"); got != 1 {
		t.Errorf("registrations = %d, want 1", got)
	}
}

func TestDrop(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	dropped, err := f.registration.Drop(ctx, "S1", "CSCI101-A")
	if err != nil {
		t.Fatal(err)
	}
	if dropped {
		t.Error("dropping an unregistered course reported dropped=true")
	}
	if got := f.course(t, "CSCI101-A").SeatsUsed; got != 12 {
		t.Errorf("seats_used after no-op drop = %d, want 12", got)
	}

	if _, err := f.registration.Register(ctx, "S1", "CSCI101-A"); err != nil {
		t.Fatal(err)
	}
	dropped, err = f.registration.Drop(ctx, "S1", "CSCI101-A")
	if err != nil {
		t.Fatal(err)
	}
	if !dropped {
		t.Error("dropped = false after registering")
	}
	if got := f.course(t, "CSCI101-A").SeatsUsed; got != 12 {
		t.Errorf("seats_used after drop = %d, want 12", got)
	}

	if _, err := f.registration.Drop(ctx, "S1", "NOPE999"); err != nil {
		t.Errorf("drop of unknown course = %v, want nil", err)
	}
}

func TestDropNeverGoesNegative(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	empty := model.Course{ID: "ART100-A", Dept: "ART", Number: 100, MaxSeats: 2}
	if err := f.catalog.Seed(ctx, []model.Course{empty}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.registration.Register(ctx, "S1", "ART100-A"); err != nil {
		t.Fatal(err)
	}
	// Counter drift: seats_used is already 0 while the registration remains.
	if err := f.courses.DecrementSeats(ctx, "ART100-A"); err != nil {
		t.Fatal(err)
	}

	if _, err := f.registration.Drop(ctx, "S1", "ART100-A"); err != nil {
		t.Fatal(err)
	}
	if got := f.course(t, "ART100-A").SeatsUsed; got != 0 {
		t.Errorf("seats_used = %d, want 0", got)
	}
}

func TestSeatCountStaysInBounds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	small := model.Course{ID: "MUS110-A", Dept: "MUS", Number: 110, MaxSeats: 3}
	if err := f.catalog.Seed(ctx, []model.Course{small}); err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))
	students := []string{"S1", "S2", "S3", "S4", "S5"}
	courses := []string{"MUS110-A", "CSCI101-A", "CSCI245-B", "INFO361-01"}

	for i := 0; i < 500; i++ {
		sid := students[rng.Intn(len(students))]
		cid := courses[rng.Intn(len(courses))]
		if rng.Intn(2) == 0 {
			_, _ = f.registration.Register(ctx, sid, cid)
		} else {
			_, _ = f.registration.Drop(ctx, sid, cid)
		}

		for _, id := range courses {
			c := f.course(t, id)
			if c.SeatsUsed < 0 || c.SeatsUsed > c.MaxSeats {
				t.Fatalf("step %d: %s seats_used = %d, max %d", i, id, c.SeatsUsed, c.MaxSeats)
			}
		}
	}

	// MUS110-A started empty, so its counter tracks the roster exactly.
	if got, want := f.course(t, "MUS110-A").SeatsUsed, f.rosterSize(t, "MUS110-A"); got != want {
		t.Errorf("MUS110-A seats_used = %d, roster = %d", got, want)
	}
}

func TestFullCourseScenario(t *testing.T) {
	f := newFixture(t)

	_, err := f.registration.Register(context.Background(), "S1", "INFO361-01")
	// Unmet prerequisite is reported before capacity.
	if !errors.Is(err, service.ErrPrerequisiteUnmet) {
		t.Fatalf("error = %v, want ErrPrerequisiteUnmet", err)
	}
	if got := f.course(t, "INFO361-01").SeatsUsed; got != 30 {
		t.Errorf("seats_used = %d, want 30", got)
	}
}

// callLog wraps the memory stores and records the order of row-touching calls.
type callLog struct {
	calls []string
}

type loggedCourses struct {
	service.CourseStore
	log *callLog
}

func (c loggedCourses) LockByID(ctx context.Context, id string) (*model.Course, error) {
	c.log.calls = append(c.log.calls, "lock "+id)
	return c.CourseStore.LockByID(ctx, id)
}

func (c loggedCourses) DecrementSeats(ctx context.Context, id string) error {
	c.log.calls = append(c.log.calls, "decrement "+id)
	return c.CourseStore.DecrementSeats(ctx, id)
}

type loggedRegistrations struct {
	service.RegistrationStore
	log *callLog
}

func (r loggedRegistrations) Delete(ctx context.Context, studentID, courseID string) (bool, error) {
	r.log.calls = append(r.log.calls, "delete "+courseID)
	return r.RegistrationStore.Delete(ctx, studentID, courseID)
}

func TestDropLocksCourseBeforeDeleting(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	if _, err := f.registration.Register(ctx, "S1", "CSCI101-A"); err != nil {
		t.Fatalf("register: %v", err)
	}

	log := &callLog{}
	svc := service.NewRegistrationService(
		memory.NewTransactor(f.db),
		loggedCourses{CourseStore: f.courses, log: log},
		loggedRegistrations{RegistrationStore: f.registrations, log: log},
		zerolog.Nop(),
	)

	tests := []struct {
		name        string
		courseID    string
		wantDropped bool
		wantCalls   []string
	}{
		{
			name:        "registered",
			courseID:    "CSCI101-A",
			wantDropped: true,
			wantCalls:   []string{"lock CSCI101-A", "delete CSCI101-A", "decrement CSCI101-A"},
		},
		{
			name:      "not registered",
			courseID:  "CSCI245-B",
			wantCalls: []string{"lock CSCI245-B", "delete CSCI245-B"},
		},
		{
			name:      "unknown course",
			courseID:  "NOPE999",
			wantCalls: []string{"lock NOPE999"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.calls = nil
			dropped, err := svc.Drop(ctx, "S1", tt.courseID)
			if err != nil {
				t.Fatalf("Drop: %v", err)
			}
			if dropped != tt.wantDropped {
				t.Errorf("dropped = %v, want %v", dropped, tt.wantDropped)
			}
			if !slices.Equal(log.calls, tt.wantCalls) {
				t.Errorf("calls = %v, want %v", log.calls, tt.wantCalls)
			}
		})
	}
}

func TestRegistrationLogsComponent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var buf bytes.Buffer
	svc := service.NewRegistrationService(memory.NewTransactor(f.db), f.courses, f.registrations, logger.New(&buf, "json"))
	if _, err := svc.Register(ctx, "S1", "CSCI101-A"); err != nil {
		t.Fatalf("register: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["component"] != "registration" || entry["course_id"] != "CSCI101-A" {
		t.Errorf("log entry = %v", entry)
	}
}
