// Package httpstatus classifies a small set of HTTP status codes.
//
// Only a few representative codes are defined; a complete table would list
// every code in RFC 9110.
package httpstatus

import "net/http"

// Code is an HTTP response status code known to this package
type Code int

const (
	Continue            Code = http.StatusContinue            // 100
	OK                  Code = http.StatusOK                  // 200
	MovedPermanently    Code = http.StatusMovedPermanently    // 301
	NotFound            Code = http.StatusNotFound            // 404
	InternalServerError Code = http.StatusInternalServerError // 500
)

// Class is the range a status code falls in
type Class string

const (
	ClassInformational Class = "informational"
	ClassSuccessful    Class = "successful"
	ClassRedirection   Class = "redirection"
	ClassClientError   Class = "client_error"
	ClassServerError   Class = "server_error"
)

// All returns the known codes in ascending order
func All() []Code {
	return []Code{Continue, OK, MovedPermanently, NotFound, InternalServerError}
}

// FromCode looks up a known code by its numeric value
func FromCode(code int) (Code, bool) {
	for _, c := range All() {
		if int(c) == code {
			return c, true
		}
	}
	return 0, false
}

// Int returns the numeric status code
func (c Code) Int() int {
	return int(c)
}

// String returns the standard reason phrase, e.g. "Not Found"
func (c Code) String() string {
	return http.StatusText(int(c))
}

// IsInformational reports 1xx. 100 is the lowest defined code, so there is no
// lower bound check.
func (c Code) IsInformational() bool {
	return c <= 199
}

// IsSuccessful reports 2xx
func (c Code) IsSuccessful() bool {
	return c >= 200 && c <= 299
}

// IsRedirection reports 3xx
func (c Code) IsRedirection() bool {
	return c >= 300 && c <= 399
}

// IsClientError reports 4xx
func (c Code) IsClientError() bool {
	return c >= 400 && c <= 499
}

// IsServerError reports 5xx. 599 is the highest defined code, so there is no
// upper bound check.
func (c Code) IsServerError() bool {
	return c >= 500
}

// Class returns the range label for the code
func (c Code) Class() Class {
	switch {
	case c.IsInformational():
		return ClassInformational
	case c.IsSuccessful():
		return ClassSuccessful
	case c.IsRedirection():
		return ClassRedirection
	case c.IsClientError():
		return ClassClientError
	default:
		return ClassServerError
	}
}
