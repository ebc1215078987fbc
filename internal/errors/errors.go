package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotReady is returned when the document store connection is not established.
	ErrNotReady = errors.New("database connection not ready")
	// ErrNotFound is returned by repositories when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when an identifier is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid id format")
	// ErrInvalidRole is returned when a role is not one of user, moderator, admin.
	ErrInvalidRole = errors.New("invalid role")
	// ErrForbidden is returned when the caller's role does not permit the route.
	ErrForbidden = errors.New("forbidden access")
	// ErrInvalidAmount is returned when a price is missing, non-numeric or not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrPaymentUnavailable is returned when no payment provider key is configured.
	ErrPaymentUnavailable = errors.New("payment provider not configured")
	// ErrPaymentRejected is matched by every PaymentRejectedError.
	ErrPaymentRejected = errors.New("payment rejected by provider")
)

// PaymentRejectedError carries the provider's status and message unchanged.
type PaymentRejectedError struct {
	StatusCode int
	Message    string
}

func (e *PaymentRejectedError) Error() string {
	return e.Message
}

// Is reports ErrPaymentRejected as a match.
func (e *PaymentRejectedError) Is(target error) bool {
	return target == ErrPaymentRejected
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Hint      string `json:"hint,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
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
	resp := ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
	if e.StatusCode == http.StatusServiceUnavailable {
		resp.Hint = "the database is still connecting, retry the request shortly"
		resp.Retryable = true
	}
	return resp
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Unknown errors keep their message so the caller can see what failed.
func MapErrorToHTTP(err error) *HTTPError {
	var rejected *PaymentRejectedError
	switch {
	case errors.Is(err, ErrNotReady):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error(), "DB_NOT_READY")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ID")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrPaymentUnavailable):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "PAYMENT_UNAVAILABLE")
	case errors.As(err, &rejected):
		status := rejected.StatusCode
		if status < 400 {
			status = http.StatusBadGateway
		}
		return NewHTTPError(status, rejected.Message, "PAYMENT_REJECTED")
	case err == nil:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
