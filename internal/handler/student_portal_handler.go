package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/response"
	"github.com/campusconnect/backend/internal/service"
)

// StudentPortalHandler handles a signed-in student's course actions.
type StudentPortalHandler struct {
	registrationService *service.RegistrationService
	catalogService      *service.CatalogService
	billingService      *service.BillingService
	log                 zerolog.Logger
}

// NewStudentPortalHandler creates a new StudentPortalHandler.
func NewStudentPortalHandler(
	registrationService *service.RegistrationService,
	catalogService *service.CatalogService,
	billingService *service.BillingService,
	log zerolog.Logger,
) *StudentPortalHandler {
	return &StudentPortalHandler{
		registrationService: registrationService,
		catalogService:      catalogService,
		billingService:      billingService,
		log:                 logger.Component(log, "student_portal_handler"),
	}
}

// Register godoc
// POST /register/:course_id
// Enrolls the student and redirects back with the outcome as a notice.
func (h *StudentPortalHandler) Register(c *gin.Context) {
	id := middleware.GetIdentity(c)
	courseID := c.Param("course_id")

	_, err := h.registrationService.Register(c.Request.Context(), id.StudentID, courseID)
	switch {
	case err == nil:
		response.AddNotice(c, response.SeveritySuccess, "", "Registered successfully.")
	case addServiceNotice(c, err):
	default:
		internalError(c, h.log, err, "Failed to register course")
		return
	}
	response.Redirect(c, backTo(c, "/my-courses"))
}

// Drop godoc
// POST /drop/:course_id
func (h *StudentPortalHandler) Drop(c *gin.Context) {
	id := middleware.GetIdentity(c)

	dropped, err := h.registrationService.Drop(c.Request.Context(), id.StudentID, c.Param("course_id"))
	if err != nil {
		internalError(c, h.log, err, "Failed to drop course")
		return
	}
	if dropped {
		response.AddNotice(c, response.SeverityWarning, "", "Dropped the course.")
	} else {
		response.AddNotice(c, response.SeverityInfo, "", "You were not registered for this course.")
	}
	response.Redirect(c, backTo(c, "/my-courses"))
}

// MyCourses godoc
// GET /my-courses
// Returns enrolled and available courses plus the billing summary.
func (h *StudentPortalHandler) MyCourses(c *gin.Context) {
	id := middleware.GetIdentity(c)
	ctx := c.Request.Context()

	courses, err := h.catalogService.ForStudent(ctx, id.StudentID)
	if err != nil {
		internalError(c, h.log, err, "Failed to load student courses")
		return
	}
	billing, err := h.billingService.Compute(ctx, id.StudentID)
	if err != nil {
		internalError(c, h.log, err, "Failed to compute billing")
		return
	}

	response.View(c, myCoursesView{
		Identity:  newIdentityView(id),
		Enrolled:  courses.Enrolled,
		Available: courses.Available,
		Billing:   billing,
	})
}
