package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/response"
	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/internal/validator"
)

// AuthHandler handles student and admin login/logout.
type AuthHandler struct {
	authService    *service.AuthService
	studentService *service.StudentService
	log            zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, studentService *service.StudentService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		studentService: studentService,
		log:            logger.Component(log, "auth_handler"),
	}
}

// LoginPage godoc
// GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	response.View(c, gin.H{"identity": newIdentityView(middleware.GetIdentity(c))})
}

// StudentLogin godoc
// POST /login
// Upserts the student and replaces any current session with a student-only one.
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req model.StudentLoginRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.AddNotice(c, response.SeverityWarning, response.ErrValidation, "Please enter both name and student ID.")
		response.Redirect(c, "/login")
		return
	}

	ctx := c.Request.Context()
	student, err := h.studentService.Login(ctx, req.StudentID, req.Name)
	if err != nil {
		internalError(c, h.log, err, "Failed to upsert student")
		return
	}

	h.revokeCurrent(c)
	session, err := h.authService.IssueStudentSession(ctx, student.ID, student.Name)
	if err != nil {
		internalError(c, h.log, err, "Failed to issue student session")
		return
	}
	middleware.SetSessionCookie(c, session.Token, session.ExpiresAt)

	response.AddNotice(c, response.SeveritySuccess, "", fmt.Sprintf("Welcome, %s!", student.Name))
	response.Redirect(c, "/my-courses")
}

// Logout godoc
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.revokeCurrent(c)
	middleware.ClearSessionCookie(c)
	response.AddNotice(c, response.SeverityInfo, "", "You have been logged out.")
	response.Redirect(c, "/")
}

// AdminLoginPage godoc
// GET /admin-login
func (h *AuthHandler) AdminLoginPage(c *gin.Context) {
	response.View(c, gin.H{"identity": newIdentityView(middleware.GetIdentity(c))})
}

// AdminLogin godoc
// POST /admin-login
// Checks the shared admin credential; a failed attempt leaves the session untouched.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		addServiceNotice(c, service.ErrInvalidCredentials)
		response.Redirect(c, "/admin-login")
		return
	}

	if err := h.authService.AuthenticateAdmin(strings.TrimSpace(req.Username), req.Password); err != nil {
		h.log.Warn().Str("client_ip", c.ClientIP()).Msg("Admin login failed")
		addServiceNotice(c, err)
		response.Redirect(c, "/admin-login")
		return
	}

	h.revokeCurrent(c)
	session, err := h.authService.IssueAdminSession(c.Request.Context())
	if err != nil {
		internalError(c, h.log, err, "Failed to issue admin session")
		return
	}
	middleware.SetSessionCookie(c, session.Token, session.ExpiresAt)

	response.AddNotice(c, response.SeveritySuccess, "", "Logged in as admin.")
	response.Redirect(c, "/admin-dashboard")
}

// AdminLogout godoc
// GET /admin-logout
// Ends an admin session; a student session is left alone.
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	if middleware.GetIdentity(c).IsAdmin {
		h.revokeCurrent(c)
		middleware.ClearSessionCookie(c)
	}
	response.AddNotice(c, response.SeverityInfo, "", "Admin logged out.")
	response.Redirect(c, "/")
}

func (h *AuthHandler) revokeCurrent(c *gin.Context) {
	id := middleware.GetIdentity(c)
	if id.TokenID == "" {
		return
	}
	if err := h.authService.Revoke(c.Request.Context(), id.TokenID); err != nil {
		h.log.Warn().Err(err).Msg("Failed to revoke session")
	}
}
