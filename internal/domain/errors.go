package domain

import (
	"errors"
	"fmt"
)

var ErrContainerUnavailable = errors.New("container unavailable")

type LoadErrorKind string

const (
	KindHTTPStatus LoadErrorKind = "http_status"
	KindDecode     LoadErrorKind = "decode"
	KindTransport  LoadErrorKind = "transport"
)

// LoadError is the single terminal failure of a load attempt.
type LoadError struct {
	Kind   LoadErrorKind
	Status int // set for KindHTTPStatus
	Err    error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("load listings: http status %d", e.Status)
	case KindDecode:
		return fmt.Sprintf("load listings: decode: %v", e.Err)
	default:
		return fmt.Sprintf("load listings: %s: %v", e.Kind, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadErrorKindOf returns the kind of a wrapped *LoadError, or "" if err is not one.
func LoadErrorKindOf(err error) LoadErrorKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}
