package luego

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These map extraction failures onto a small, flat set of machine-readable
// codes. Implementations wrap lower-level causes into the message.
const (
	EINVALID   = "invalid"    // malformed input URL or non-http(s) scheme
	ENETWORK   = "network"    // transport failure or timeout
	EPARSE     = "parse"      // HTML could not be parsed into a document
	ENOCONTENT = "no_content" // document parsed but no extraction tier produced enough text
	ENOTFOUND  = "not_found"  // stored article does not exist
	EINTERNAL  = "internal"   // unexpected internal error
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description, safe to show to users.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("luego error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
