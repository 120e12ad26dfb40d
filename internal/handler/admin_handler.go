package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/response"
	"github.com/campusconnect/backend/internal/service"
)

// AdminHandler serves the administrator views.
type AdminHandler struct {
	adminService *service.AdminService
	log          zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *service.AdminService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{adminService: adminService, log: logger.Component(log, "admin_handler")}
}

// Dashboard godoc
// GET /admin-dashboard
// Returns seat usage for every course and the summary counters.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		internalError(c, h.log, err, "Failed to load dashboard")
		return
	}
	response.View(c, dashboard)
}

// CourseRoster godoc
// GET /admin/course/:course_id
func (h *AdminHandler) CourseRoster(c *gin.Context) {
	roster, err := h.adminService.CourseRoster(c.Request.Context(), c.Param("course_id"))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			addServiceNotice(c, err)
			response.Redirect(c, "/admin-dashboard")
			return
		}
		internalError(c, h.log, err, "Failed to load course roster")
		return
	}
	response.View(c, roster)
}
