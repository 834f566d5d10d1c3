package navigation

import (
	"errors"
	"net/http"
	"strings"
)

// Domain errors for route table construction and resolution.
var (
	ErrNotFound      = errors.New("route not found")
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrDuplicateName = errors.New("duplicate route name")
	ErrInvalidRoute  = errors.New("invalid route")
	ErrEmptyTable    = errors.New("route table has no routes")
)

// ConfigurationError reports every problem found while building a Table.
// Each problem wraps one of the sentinel errors above, so errors.Is can be
// used against the ConfigurationError directly.
type ConfigurationError struct {
	Problems []error
}

func (e *ConfigurationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return "invalid route table: " + strings.Join(msgs, "; ")
}

func (e *ConfigurationError) Unwrap() []error {
	return e.Problems
}

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
