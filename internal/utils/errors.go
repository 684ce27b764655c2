package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrInvalidEmail     = errors.New("invalid_email")
	ErrEmailExists      = errors.New("email_exists")
	ErrEmailNotVerified = errors.New("email_not_verified")

	ErrInvalidCredentials = errors.New("invalid_credentials")

	// OTP issuance failures. Controllers collapse both into one generic
	// user-facing message so infrastructure state never leaks to an
	// unauthenticated caller.
	ErrPersistFailed  = errors.New("persist_failed")
	ErrDispatchFailed = errors.New("dispatch_failed")

	// Resend cooldown
	ErrResendCooldown = errors.New("resend_cooldown")

	ErrNoRowsUpdated = errors.New("no_rows_updated")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
