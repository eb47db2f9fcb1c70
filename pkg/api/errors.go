package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyID     = errors.New("api: recipe id is required")
	ErrEmptyAuthor = errors.New("api: author name is required")
)

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Label  string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API %s failed: %s", e.Label, e.Status)
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}
