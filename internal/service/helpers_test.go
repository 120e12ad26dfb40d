package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/repository/memory"
	"github.com/campusconnect/backend/internal/seed"
	"github.com/campusconnect/backend/internal/service"
)

type fixture struct {
	db            *memory.DB
	courses       *memory.CourseRepository
	registrations *memory.RegistrationRepository
	payments      *memory.PaymentRepository

	catalog      *service.CatalogService
	registration *service.RegistrationService
	billing      *service.BillingService
	payment      *service.PaymentService
	admin        *service.AdminService
	students     *service.StudentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := memory.Open()
	tx := memory.NewTransactor(db)
	log := zerolog.Nop()

	f := &fixture{
		db:            db,
		courses:       memory.NewCourseRepository(db),
		registrations: memory.NewRegistrationRepository(db),
		payments:      memory.NewPaymentRepository(db),
	}
	f.catalog = service.NewCatalogService(tx, f.courses, log)
	f.registration = service.NewRegistrationService(tx, f.courses, f.registrations, log)
	f.billing = service.NewBillingService(memory.NewBillingRepository(db))
	f.payment = service.NewPaymentService(tx, f.payments, f.billing, log)
	f.admin = service.NewAdminService(memory.NewDashboardRepository(db), f.courses, f.registrations)
	f.students = service.NewStudentService(memory.NewStudentRepository(db))

	if err := f.catalog.Seed(context.Background(), seed.DefaultCourses()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return f
}

func (f *fixture) course(t *testing.T, id string) *model.Course {
	t.Helper()
	c, err := f.courses.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get course %s: %v", id, err)
	}
	return c
}

func (f *fixture) rosterSize(t *testing.T, courseID string) int {
	t.Helper()
	roster, err := f.registrations.ListByCourse(context.Background(), courseID)
	if err != nil {
		t.Fatalf("roster %s: %v", courseID, err)
	}
	return len(roster)
}
