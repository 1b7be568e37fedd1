package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Every operation fails with exactly one of three error kinds:
//
//   - ServerError: the server answered with a non-2xx status
//   - NetworkError: the request went out but no response came back
//   - ClientError: the request could not even be built or encoded
//
// Nothing is retried; callers decide what to show the user.

type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

type ClientError struct {
	Message string
}

func (e *ClientError) Error() string { return e.Message }

// IsNotFound reports whether err is a ServerError carrying a 404.
func IsNotFound(err error) bool {
	var se *ServerError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
