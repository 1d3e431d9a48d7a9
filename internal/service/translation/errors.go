package translation

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTranslation = errors.New("empty translation")
	ErrUnchanged        = errors.New("translation equals input")
	ErrMalformed        = errors.New("malformed translation response")
	ErrUnknownProvider  = errors.New("unknown translation provider")
)

// ProviderError wraps a failure of one remote translator.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
