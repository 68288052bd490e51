package notestore

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure reported by the note service
type Kind int

const (
	// KindSystem is a service-side failure or an unreachable service
	KindSystem Kind = iota
	// KindUser is a request the service rejected
	KindUser
	// KindNotFound is a reference to something that does not exist
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindNotFound:
		return "not found"
	default:
		return "system"
	}
}

// ServiceError is a failed note service call
type ServiceError struct {
	Kind      Kind
	Status    int    // HTTP status, 0 when the service was not reached
	Code      string // service error code, e.g. QUOTA_REACHED
	Parameter string
	Message   string
	Err       error
}

func (e *ServiceError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, msg)
	}
	if e.Parameter != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Parameter)
	}
	return msg
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsServiceError reports whether err came from the note service boundary
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

// kindForStatus maps an HTTP status to a failure kind
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindUser
	default:
		return KindSystem
	}
}
