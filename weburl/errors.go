/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package weburl

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ParseError. Use errors.Is to test for them.
var (
	// ErrEmpty is returned when the input is empty after trimming whitespace.
	ErrEmpty = errors.New("empty URL")
	// ErrUnrecognized is returned when the input starts with a character
	// that cannot begin any URL form (one of ";:@=").
	ErrUnrecognized = errors.New("unrecognized URL form")
	// ErrUnsupportedScheme is returned for "scheme://" inputs whose scheme
	// is neither http nor https.
	ErrUnsupportedScheme = errors.New("unsupported scheme")
	// ErrInvalidUserInfo is returned for a malformed "user[:pass]@" part.
	ErrInvalidUserInfo = errors.New("invalid user info")
	// ErrInvalidHost is returned when the host is missing or not domain-like.
	ErrInvalidHost = errors.New("invalid host")
	// ErrInvalidPort is returned when the port is empty, non-numeric or too large.
	ErrInvalidPort = errors.New("invalid port")
)

// Resolution errors.
var (
	// ErrInvalidURL is returned when the base or the reference is not valid.
	ErrInvalidURL = errors.New("cannot resolve an invalid URL")
	// ErrBaseNotAbsolute is returned when resolving against a relative base.
	ErrBaseNotAbsolute = errors.New("base URL is not absolute")
)

// ParseError is the error type returned by the parsing functions in this package.
// Err holds one of the sentinel errors above.
type ParseError struct {
	Input   string
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("URL parse error: %s", e.Message)
	}
	return fmt.Sprintf("URL parse error: %q: %s", e.Input, e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a new ParseError for input, wrapping the sentinel
// carried by err. It returns nil if err is nil.
func newParseError(input string, err error) *ParseError {
	if err == nil {
		return nil
	}
	kind := errors.Unwrap(err)
	if kind == nil {
		kind = err
	}
	return &ParseError{Input: input, Message: err.Error(), Err: kind}
}

// kindError is a specialized error type used by the parser to provide
// detailed context about a parsing failure.
type kindError struct {
	kind    error
	char    rune
	details string
}

// Error formats the error message with any available character or details.
func (e *kindError) Error() string {
	msg := e.kind.Error()
	if e.char != 0 {
		msg = fmt.Sprintf("%s: unexpected character '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}

// Unwrap returns the sentinel error classifying the failure.
func (e *kindError) Unwrap() error {
	return e.kind
}
