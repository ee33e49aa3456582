package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for a bad email or password. The two
	// cases share one error so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotActivated is returned when credentials are valid but the account
	// has not been activated by an admin.
	ErrNotActivated = errors.New("account is not activated")
	// ErrEmailExists is returned when registering an email that is taken.
	ErrEmailExists = errors.New("email already registered")
	// ErrUserNotFound is returned for operations on a nonexistent user id.
	ErrUserNotFound = errors.New("user not found")
	// ErrScopeRequired is returned when activating a user with no LGA grants.
	ErrScopeRequired = errors.New("user has no LGA access assigned")
	// ErrForbidden is returned for a valid session with insufficient rights.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated is returned for a missing, malformed or expired token.
	ErrUnauthenticated = errors.New("invalid or expired token")
	// ErrPasswordTooShort is returned when a password is under 8 characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrInvalidRole is returned for a role outside {user, admin}.
	ErrInvalidRole = errors.New("invalid role")
	// ErrEmptyUpdate is returned when a user update names no fields.
	ErrEmptyUpdate = errors.New("no fields to update")
	// ErrLGANotVisible is returned when a stats query names an LGA outside
	// the caller's effective scope.
	ErrLGANotVisible = errors.New("LGA is not within your access")
)

// ErrorResponse is the standardized error body: {error: true, message, code?}.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
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
		Error:   true,
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// to a generic 500 so internal detail never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrNotActivated):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCOUNT_NOT_ACTIVATED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrLGANotVisible):
		return NewHTTPError(http.StatusForbidden, err.Error(), "LGA_NOT_VISIBLE")
	case errors.Is(err, ErrEmailExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_EXISTS")
	case errors.Is(err, ErrScopeRequired):
		return NewHTTPError(http.StatusConflict, err.Error(), "LGA_REQUIRED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrPasswordTooShort):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_TOO_SHORT")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrEmptyUpdate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_UPDATE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
