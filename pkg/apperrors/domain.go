package apperrors

import "net/http"

// Factories for errors that wrap a repository-level cause.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// Predefined errors for the frequent, static cases.

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Jobs ---

// ErrWeeklyJobLimit rejects a non-premium posting after the weekly
// quota has been used up.
var ErrWeeklyJobLimit = New(
	CodeLimitExceeded,
	"jobs",
	"Weekly limit reached: upgrade to premium for unlimited postings",
	http.StatusBadRequest,
)

// ErrMissingSchedule rejects a job with neither date+time nor a
// multi-day schedule list.
var ErrMissingSchedule = New(
	CodeValidationFailed,
	"jobs",
	"A job needs either a date and time or a multi-day schedule",
	http.StatusBadRequest,
)

var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job not found",
	http.StatusNotFound,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"applications",
	"Application not found",
	http.StatusNotFound,
)

var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"applications",
	"You have already applied to this job",
	http.StatusBadRequest,
)

var ErrCannotApplyToOwnJob = New(
	CodeInvalidOperation,
	"applications",
	"You cannot apply to your own job",
	http.StatusBadRequest,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"applications",
	"Status must be pending, accepted or rejected",
	http.StatusBadRequest,
)

// --- Auth & users ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusBadRequest,
)

// ErrInvalidCredentials covers both unknown e-mail and wrong password
// so the response does not reveal which one failed.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusBadRequest,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)
