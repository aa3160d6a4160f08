package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the domain errors of the job board.
Repository sentinel errors get translated into these at the service layer.
*/

// ErrNotFound wraps a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a repository duplicate error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
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
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrEmployerSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrNotJobOwner: the caller's employer identity does not own the parent job.
var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"You do not own this job posting",
	http.StatusForbidden,
)

// ErrInvalidJobStatus: the operation is not allowed in the job's current status.
var ErrInvalidJobStatus = New(
	CodeInvalidStatus,
	"job",
	"Operation not allowed for the current job status",
	http.StatusConflict,
)

// ErrJobNotActive: applications are accepted only while a job is active.
var ErrJobNotActive = New(
	CodeInvalidStatus,
	"job",
	"This job is not accepting applications",
	http.StatusConflict,
)

// --- Applications / pipeline ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

// ErrInvalidStage: the requested stage is not a member of the pipeline enum.
var ErrInvalidStage = New(
	CodeValidationFailed,
	"pipeline",
	"Unknown pipeline stage",
	http.StatusBadRequest,
)

// ErrDuplicateApplication: the (job, candidate email) pair already has an
// application. Enforced on the public submission path only.
var ErrDuplicateApplication = New(
	CodeConflict,
	"application",
	"An application for this job with this email already exists",
	http.StatusConflict,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
