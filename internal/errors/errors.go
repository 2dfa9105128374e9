// Package errors provides standardized error types for sitemux.
//
// Every failure the dispatch engine can run into is described by a SiteError
// carrying a Code. The engine never returns these to the transport: it maps
// them to an HTTP status with StatusCode and renders that status through the
// error trigger, so the codes mostly matter for logging and tests.
//
// # Error Codes
//
//   - CONFIG_UNAVAILABLE: the site document could not be read
//   - CONFIG_MALFORMED: the site document could not be decoded
//   - SERVICE_DISABLED: the process or the website is switched off
//   - NOT_FOUND: no static rule or page matched the request
//   - STATIC_FILE_MISSING: a static rule matched but the file is absent
//   - HANDLER_MISSING: a page matched but nothing can render it
//
// # Usage
//
//	return errors.NotFound("example.com", "/missing")
//	return errors.ConfigUnavailable("server.json", err)
//
//	if errors.Is(err, errors.ErrServiceDisabled) {
//	    // 503
//	}
//
//	status := errors.StatusCode(err)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for the dispatch failure kinds.
const (
	ErrCodeConfigUnavailable ErrorCode = "CONFIG_UNAVAILABLE"
	ErrCodeConfigMalformed   ErrorCode = "CONFIG_MALFORMED"
	ErrCodeServiceDisabled   ErrorCode = "SERVICE_DISABLED"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeStaticMissing     ErrorCode = "STATIC_FILE_MISSING"
	ErrCodeHandlerMissing    ErrorCode = "HANDLER_MISSING"
	ErrCodeValidation        ErrorCode = "VALIDATION"
	ErrCodeInternal          ErrorCode = "INTERNAL"
)

// SiteError is a failure tied to an optional website host.
type SiteError struct {
	Code    ErrorCode
	Message string
	Host    string // canonical host, empty when unknown
	Err     error
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Code)
	}
	switch {
	case e.Host != "" && e.Err != nil:
		return fmt.Sprintf("site %s: %s: %v", e.Host, msg, e.Err)
	case e.Host != "":
		return fmt.Sprintf("site %s: %s", e.Host, msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *SiteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *SiteError with the same code.
func (e *SiteError) Is(target error) bool {
	t, ok := target.(*SiteError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors, for use with errors.Is.
var (
	ErrConfigUnavailable = &SiteError{Code: ErrCodeConfigUnavailable, Message: "configuration unavailable"}
	ErrConfigMalformed   = &SiteError{Code: ErrCodeConfigMalformed, Message: "configuration malformed"}
	ErrServiceDisabled   = &SiteError{Code: ErrCodeServiceDisabled, Message: "service disabled"}
	ErrNotFound          = &SiteError{Code: ErrCodeNotFound, Message: "not found"}
	ErrStaticMissing     = &SiteError{Code: ErrCodeStaticMissing, Message: "static file missing"}
	ErrHandlerMissing    = &SiteError{Code: ErrCodeHandlerMissing, Message: "no handler for page"}
	ErrValidation        = &SiteError{Code: ErrCodeValidation, Message: "invalid configuration"}
)

// ConfigUnavailable wraps a read failure of the document at path.
func ConfigUnavailable(path string, err error) error {
	return &SiteError{
		Code:    ErrCodeConfigUnavailable,
		Message: fmt.Sprintf("cannot read %s", path),
		Err:     err,
	}
}

// ConfigMalformed wraps a decode failure of the document at path.
func ConfigMalformed(path string, err error) error {
	return &SiteError{
		Code:    ErrCodeConfigMalformed,
		Message: fmt.Sprintf("cannot parse %s", path),
		Err:     err,
	}
}

// ServiceDisabled reports a switched-off process (host empty) or website.
func ServiceDisabled(host string) error {
	return &SiteError{
		Code:    ErrCodeServiceDisabled,
		Message: "service disabled",
		Host:    host,
	}
}

// NotFound reports that nothing on host matched path.
func NotFound(host, path string) error {
	return &SiteError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("nothing matches %s", path),
		Host:    host,
	}
}

// StaticMissing reports a static rule whose file does not exist.
func StaticMissing(host, file string) error {
	return &SiteError{
		Code:    ErrCodeStaticMissing,
		Message: fmt.Sprintf("static file %s missing", file),
		Host:    host,
	}
}

// HandlerMissing reports a matched page with nothing able to render it.
func HandlerMissing(host, page string) error {
	return &SiteError{
		Code:    ErrCodeHandlerMissing,
		Message: fmt.Sprintf("no handler for page %q", page),
		Host:    host,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &SiteError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &SiteError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// StatusCode maps err to the HTTP status the error trigger renders.
// Configuration failures surface as 404 so a broken document looks the
// same to clients as a missing page.
func StatusCode(err error) int {
	var se *SiteError
	if !errors.As(err, &se) {
		return http.StatusInternalServerError
	}
	switch se.Code {
	case ErrCodeServiceDisabled:
		return http.StatusServiceUnavailable
	case ErrCodeNotFound, ErrCodeConfigUnavailable, ErrCodeConfigMalformed:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
