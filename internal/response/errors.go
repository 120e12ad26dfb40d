package response

// ErrCode is a typed error code enum for consistent error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrUnauthorized ErrCode = "UNAUTHORIZED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Registration ──────────────────────────────────────────────────
	ErrPrerequisiteUnmet ErrCode = "PREREQUISITE_UNMET"
	ErrCourseFull        ErrCode = "COURSE_FULL"
	ErrAlreadyRegistered ErrCode = "ALREADY_REGISTERED"

	// ─── Billing ───────────────────────────────────────────────────────
	ErrNoOutstandingBalance ErrCode = "NO_OUTSTANDING_BALANCE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrUnauthorized:
		return "Please log in first."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Course not found."

	// ─── Registration ──────────────────────────────────────────────────
	case ErrPrerequisiteUnmet:
		return "Prerequisite required."
	case ErrCourseFull:
		return "Course is full. No seats remaining."
	case ErrAlreadyRegistered:
		return "You are already registered for this course."

	// ─── Billing ───────────────────────────────────────────────────────
	case ErrNoOutstandingBalance:
		return "You have no outstanding balance."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
