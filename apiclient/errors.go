package apiclient

import "fmt"

// NetworkError means the request was dispatched but no response came back
// (connection refused, timeout, DNS failure). Idempotent reads may be
// retried on it; writes must not be.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a 5xx response from the reservation backend.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status %d", e.Status)
}

// APIError is a 4xx response: the backend rejected the request. Body keeps
// whatever detail the backend sent.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Body)
}

// MalformedResponseError means the backend answered 2xx but the payload did
// not decode into the expected shape, e.g. a non-array room list.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed response: " + e.Reason
}
