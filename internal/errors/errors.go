package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a username does not resolve to a user.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotAuthorized is returned when the caller is not the user being acted on.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrDuplicateUsername is returned when registering a taken username.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrAuthenticationFailed is returned for any failed login.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrMediaNotFound is returned when a media item to update does not exist.
	ErrMediaNotFound = errors.New("media not found")
	// ErrMediaExists is returned when inserting a (name, user) pair that already exists.
	ErrMediaExists = errors.New("media already exists")
)

// Stable user-facing messages.
const (
	MsgUserNotFound         = "User doesn't exist. Please register user."
	MsgNotAuthorized        = "You are not logged in as this user. Please log in."
	MsgDuplicateUsername    = "This username is already taken. Please choose another."
	MsgAuthenticationFailed = "Invalid username or password."
	MsgMediaNotFound        = "Media doesn't exist."
	MsgMediaExists          = "Media already exists."
	MsgMissingToken         = "No Authorization header found. Please add auth_token in Authorization header."
	MsgInvalidToken         = "Invalid token. Please log in again."
	MsgExpiredToken         = "Signature expired. Please log in again."
	MsgInternal             = "Internal server error."
)

// ValidationError describes malformed request input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation failure for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Envelope is the response body shared by every endpoint.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	AuthToken string      `json:"auth_token,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToEnvelope converts an HTTPError to a failed response envelope.
func (e *HTTPError) ToEnvelope() Envelope {
	return Envelope{
		Success: false,
		Message: e.Message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Expected business-rule
// rejections keep status 200 and are reported through success:false.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return NewHTTPError(http.StatusUnprocessableEntity, verr.Message)
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnprocessableEntity, MsgUserNotFound)
	case errors.Is(err, ErrNotAuthorized):
		return NewHTTPError(http.StatusUnauthorized, MsgNotAuthorized)
	case errors.Is(err, ErrDuplicateUsername):
		return NewHTTPError(http.StatusOK, MsgDuplicateUsername)
	case errors.Is(err, ErrAuthenticationFailed):
		return NewHTTPError(http.StatusOK, MsgAuthenticationFailed)
	case errors.Is(err, ErrMediaNotFound):
		return NewHTTPError(http.StatusOK, MsgMediaNotFound)
	case errors.Is(err, ErrMediaExists):
		return NewHTTPError(http.StatusOK, MsgMediaExists)
	default:
		return NewHTTPError(http.StatusInternalServerError, MsgInternal)
	}
}
