package museum

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound  = errors.New("artwork not found")
	ErrNoImage   = errors.New("artwork has no image")
	ErrMalformed = errors.New("malformed upstream payload")
)

// HTTPStatusError is returned when an upstream answers with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("upstream %s returned HTTP %d", e.URL, e.StatusCode)
}

// Is reports 404 responses as ErrNotFound.
func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err means the record does not exist or cannot be shown.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoImage)
}
