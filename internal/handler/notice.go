package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/response"
	"github.com/campusconnect/backend/internal/service"
)

// addServiceNotice queues the user-facing notice for a recoverable service
// error. It reports false for errors that are not user-facing.
func addServiceNotice(c *gin.Context, err error) bool {
	var prereq *service.PrerequisiteError

	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.AddNotice(c, response.SeverityDanger, response.ErrNotFound, "Course not found.")
	case errors.As(err, &prereq):
		response.AddNotice(c, response.SeverityWarning, response.ErrPrerequisiteUnmet,
			fmt.Sprintf("Prerequisite required: %s. You must complete it before registering for %s.", prereq.PrereqID, prereq.CourseID))
	case errors.Is(err, service.ErrCourseFull):
		response.AddNotice(c, response.SeverityWarning, response.ErrCourseFull, "Course is full. No seats remaining.")
	case errors.Is(err, service.ErrAlreadyRegistered):
		response.AddNotice(c, response.SeverityInfo, response.ErrAlreadyRegistered, "You are already registered for this course.")
	case errors.Is(err, service.ErrAlreadyPaid):
		response.AddNotice(c, response.SeverityInfo, response.ErrNoOutstandingBalance, "Your tuition is already marked as PAID.")
	case errors.Is(err, service.ErrNoOutstandingBalance):
		response.AddNotice(c, response.SeverityInfo, response.ErrNoOutstandingBalance, "You have no outstanding balance.")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.AddNotice(c, response.SeverityDanger, response.ErrUnauthorized, "Invalid credentials.")
	default:
		return false
	}
	return true
}

func internalError(c *gin.Context, log zerolog.Logger, err error, msg string) {
	log.Error().Err(err).Str("request_id", c.GetString(response.ContextKeyRequestID)).Msg(msg)
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// backTo returns the Referer when it points at this host, else fallback.
func backTo(c *gin.Context, fallback string) string {
	ref := c.GetHeader("Referer")
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil {
		return fallback
	}
	if u.Host != "" && !strings.EqualFold(u.Host, c.Request.Host) {
		return fallback
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return fallback
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

// formatMoney renders an amount as $1,234.50.
func formatMoney(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac := s[:len(s)-3], s[len(s)-3:]
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String() + frac
	}
	return "$" + b.String() + frac
}
