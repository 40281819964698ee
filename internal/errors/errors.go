package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// User-facing messages. They are safe to return verbatim.
const (
	MsgUnauthorized     = "Unauthorized"
	MsgTokenMissing     = "Token is missing"
	MsgTokenInvalid     = "Invalid token"
	MsgDuplicateUser    = "User with email already exist"
	MsgDuplicateContact = "Phone number is already saved"
	MsgContactNotFound  = "Contact not found"
	MsgUserNotFound     = "User not found"
	MsgUserUpdate       = "User update is not implemented"
	MsgInternal         = "Internal server error"
)

// Error codes carried next to the HTTP status.
const (
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeEmailNotFound    = "EMAIL_NOT_FOUND"
	CodeTokenMissing     = "TOKEN_MISSING"
	CodeTokenInvalid     = "TOKEN_INVALID"
	CodeNotFound         = "NOT_FOUND"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeContactNotFound  = "CONTACT_NOT_FOUND"
	CodeDuplicate        = "DUPLICATE"
	CodeDuplicateUser    = "DUPLICATE_USER"
	CodeDuplicateContact = "DUPLICATE_CONTACT"
	CodeBadRequest       = "BAD_REQUEST"
	CodeNotImplemented   = "NOT_IMPLEMENTED"
	CodeInternal         = "INTERNAL_ERROR"
)

var (
	// ErrUnauthorized is returned when a password does not verify.
	ErrUnauthorized = Unauthorized(MsgUnauthorized)
	// ErrTokenMissing is returned by the guard when no Authorization header is sent.
	ErrTokenMissing = New(http.StatusUnauthorized, MsgTokenMissing, CodeTokenMissing)
	// ErrTokenInvalid is returned by the guard when the token fails verification.
	ErrTokenInvalid = New(http.StatusUnauthorized, MsgTokenInvalid, CodeTokenInvalid)
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = New(http.StatusConflict, MsgDuplicateUser, CodeDuplicateUser)
	// ErrDuplicateContact is returned when the phone number is already saved.
	ErrDuplicateContact = New(http.StatusConflict, MsgDuplicateContact, CodeDuplicateContact)
	// ErrContactNotFound is returned when no contact matches.
	ErrContactNotFound = New(http.StatusNotFound, MsgContactNotFound, CodeContactNotFound)
	// ErrUserNotFound is returned when no user matches.
	ErrUserNotFound = New(http.StatusNotFound, MsgUserNotFound, CodeUserNotFound)
	// ErrUserUpdateNotImplemented is returned by the unfinished user update path.
	ErrUserUpdateNotImplemented = NotImplemented(MsgUserUpdate)
)

// ErrorResponse is the envelope written for every failure.
type ErrorResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// AppError is a failure that knows its HTTP status.
type AppError struct {
	Status  int
	Message string
	Code    string
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches on status and code so wrapped sentinels compare equal.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Code == t.Code
}

// ToErrorResponse converts an AppError to the response envelope.
func (e *AppError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// New creates a new AppError.
func New(status int, message, code string) *AppError {
	return &AppError{Status: status, Message: message, Code: code}
}

// EmailNotFound is returned by login when no principal has the given email.
func EmailNotFound(email string) *AppError {
	return New(http.StatusUnauthorized, fmt.Sprintf("User with email %q not found", email), CodeEmailNotFound)
}

// Unauthorized creates a 401 failure.
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, CodeUnauthorized)
}

// NotFound creates a 404 failure.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, CodeNotFound)
}

// Duplicate creates a 409 failure.
func Duplicate(message string) *AppError {
	return New(http.StatusConflict, message, CodeDuplicate)
}

// BadRequest creates a 400 failure.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, CodeBadRequest)
}

// NotImplemented creates a 501 failure.
func NotImplemented(message string) *AppError {
	return New(http.StatusNotImplemented, message, CodeNotImplemented)
}

// Internal creates a 500 failure with the generic message.
func Internal() *AppError {
	return New(http.StatusInternalServerError, MsgInternal, CodeInternal)
}

// FromError classifies any error into an AppError. Unknown errors become 500.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return New(he.Code, fmt.Sprintf("%v", he.Message), http.StatusText(he.Code))
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("Record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Duplicate("Record already exists")
	default:
		return Internal()
	}
}

// IsInternal reports whether the classified failure is 500-class.
func (e *AppError) IsInternal() bool {
	return e.Status >= http.StatusInternalServerError && e.Status != http.StatusNotImplemented
}
