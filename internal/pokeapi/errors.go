package pokeapi

import (
	"errors"
	"fmt"
)

// NetworkError reports a transport failure or non-success HTTP status from
// the upstream API. Views surface it as a loading-failure message; it never
// crashes a view.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("request failed: %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("request failed: %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNetworkError reports whether err is (or wraps) a NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
