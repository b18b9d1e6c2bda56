package domain

import "errors"

// Code is a machine-readable error code. Callers branch on it to pick a
// user-facing message.
type Code string

const (
	CodeUnknown             Code = "UNKNOWN"
	CodeUserGroupNamesEmpty Code = "USER_GROUP_NAMES_EMPTY"
	CodeBadName             Code = "BAD_NAME"
	CodeDuplicateExtension  Code = "DUPLICATE_EXTENSION"
	CodeUnknownResourceType Code = "UNKNOWN_RESOURCE_TYPE"
	CodeMalformedXML        Code = "MALFORMED_XML"
	CodeNotFound            Code = "NOT_FOUND"
	CodeUnknownPool         Code = "UNKNOWN_POOL"
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeUnknownRule         Code = "UNKNOWN_RULE"
	CodeDatabaseError       Code = "DATABASE_ERROR"
)

// Error message string constants - single source of truth for error messages
const (
	ErrMsgUserGroupNamesEmpty = "user and group names must not be empty"
	ErrMsgBadName             = "bad name"
	ErrMsgDuplicateExtension  = "extension already mapped"
	ErrMsgUnknownResourceType = "unknown resource type"
	ErrMsgMalformedXML        = "malformed xml document"
	ErrMsgNotFound            = "not found"
	ErrMsgUnknownPool         = "unknown connection pool"
	ErrMsgInvalidInput        = "invalid input"
	ErrMsgUnknownRule         = "unknown menu rule"
	ErrMsgDatabaseError       = "database error"
)

// Error is the application error carrying a Code.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// NewError creates an error with a code and message.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError creates an error with a code that wraps an underlying cause.
func WrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// Sentinel errors, comparable with errors.Is against any error of the same code.
// Wrap them with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserGroupNamesEmpty = NewError(CodeUserGroupNamesEmpty, ErrMsgUserGroupNamesEmpty)
	ErrBadName             = NewError(CodeBadName, ErrMsgBadName)
	ErrDuplicateExtension  = NewError(CodeDuplicateExtension, ErrMsgDuplicateExtension)
	ErrUnknownResourceType = NewError(CodeUnknownResourceType, ErrMsgUnknownResourceType)
	ErrMalformedXML        = NewError(CodeMalformedXML, ErrMsgMalformedXML)
	ErrNotFound            = NewError(CodeNotFound, ErrMsgNotFound)
	ErrUnknownPool         = NewError(CodeUnknownPool, ErrMsgUnknownPool)
	ErrInvalidInput        = NewError(CodeInvalidInput, ErrMsgInvalidInput)
	ErrUnknownRule         = NewError(CodeUnknownRule, ErrMsgUnknownRule)
	ErrDatabaseError       = NewError(CodeDatabaseError, ErrMsgDatabaseError)
)
