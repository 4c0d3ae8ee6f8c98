package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrEmailTaken is returned when the email already belongs to a user.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNameTaken is returned when the name already belongs to a user.
	ErrNameTaken = errors.New("name already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unrecognized errors are
// storage-level failures and map to a 500 carrying only the generic fallback
// message, never driver detail.
func MapErrorToHTTP(err error, fallback string) *HTTPError {
	switch {
	case errors.Is(err, ErrPasswordMismatch):
		return NewHTTPError(http.StatusBadRequest, "Passwords do not match", "PASSWORD_MISMATCH")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, "Email already registered. Try logging in.", "EMAIL_TAKEN")
	case errors.Is(err, ErrNameTaken):
		return NewHTTPError(http.StatusBadRequest, "User already exists. Try logging in.", "USER_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, "Invalid email or password", "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, fallback, "INTERNAL_ERROR")
	}
}
