package authclient

import (
	"errors"
	"fmt"
)

// Code classifies how a call failed. Codes describe the transport, never the
// auth semantics of a rejection: an invalid password and an expired token are
// both CodeStatus.
type Code string

const (
	// CodeStatus means the service answered outside 2xx.
	CodeStatus Code = "status"
	// CodeTransport means no response was received.
	CodeTransport Code = "transport"
	// CodeEncode means the request body could not be marshalled.
	CodeEncode Code = "encode"
	// CodeDecode means a 2xx body did not match the expected shape.
	CodeDecode Code = "decode"
)

// Error is returned by every AuthClient operation.
type Error struct {
	Code   Code
	Op     string
	Method string
	Path   string
	// StatusCode and Body are set for CodeStatus and CodeDecode.
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case CodeStatus:
		return fmt.Sprintf("authclient: %s %s %s: status %d: %s", e.Op, e.Method, e.Path, e.StatusCode, e.Body)
	case CodeDecode:
		return fmt.Sprintf("authclient: %s %s %s: decode response (status %d): %v", e.Op, e.Method, e.Path, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("authclient: %s %s %s: %s: %v", e.Op, e.Method, e.Path, e.Code, e.Err)
	}
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// HasCode checks if err is an *Error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.StatusCode != 0 {
		return e.StatusCode, true
	}
	return 0, false
}

// ResponseBody returns the raw response body carried by err, if any.
func ResponseBody(err error) []byte {
	var e *Error
	if errors.As(err, &e) {
		return e.Body
	}
	return nil
}
