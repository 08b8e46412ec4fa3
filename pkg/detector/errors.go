package detector

import (
	"errors"
	"fmt"
)

// Kind classifies why a resolution run stopped before reaching a terminal response.
type Kind int

const (
	KindNoLocation Kind = iota + 1
	KindMaxResponseSize
	KindMaxRedirects
	KindLoopedRedirects
)

// Sentinel kinds, usable with errors.Is.
var (
	ErrNoLocation      = KindNoLocation
	ErrMaxResponseSize = KindMaxResponseSize
	ErrMaxRedirects    = KindMaxRedirects
	ErrLoopedRedirects = KindLoopedRedirects
)

func (k Kind) Error() string {
	switch k {
	case KindNoLocation:
		return "no Location header with redirect status"
	case KindMaxResponseSize:
		return "max response size exceeded"
	case KindMaxRedirects:
		return "max redirects exceeded"
	case KindLoopedRedirects:
		return "looped redirects detected"
	}
	return fmt.Sprintf("unknown detector error kind %d", int(k))
}

// Code is a stable machine-readable identifier, used in API responses and metrics labels.
func (k Kind) Code() string {
	switch k {
	case KindNoLocation:
		return "no_location"
	case KindMaxResponseSize:
		return "max_response_size"
	case KindMaxRedirects:
		return "max_redirects"
	case KindLoopedRedirects:
		return "looped_redirects"
	}
	return "unknown"
}

// Error is returned by Detect when the walk is aborted by one of its own bounds.
// Transport failures are never wrapped in an Error.
type Error struct {
	Kind Kind
	// URL is the target being processed when the run failed.
	URL string
	// Hop is the hop counter at the time of failure.
	Hop int
}

func (e *Error) Error() string {
	if e.URL == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.URL)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// CodeOf maps any error returned by Detect to a code. Errors that did not
// originate in the walker are reported as "transport".
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var kind Kind
	if errors.As(err, &kind) {
		return kind.Code()
	}
	return "transport"
}
