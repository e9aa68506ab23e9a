package fetch

import "errors"

// Common errors
var (
	ErrTimeout            = errors.New("server response timeout exceeded")
	ErrConnection         = errors.New("failed to connect to server")
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
