// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package apiclient

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the client for locally-detected conditions.
var (
	// ErrOffline is returned when the connectivity oracle reports no
	// connection before a request is sent. No network attempt is made.
	ErrOffline = errors.New("no internet connection")
	// ErrSessionExpired is returned when the refresh protocol fails or the
	// server reports the session as irrecoverably invalid. The session store
	// is cleared before this error is returned.
	ErrSessionExpired = errors.New("session expired")
)

// Server error codes carried in 401 response bodies.
const (
	CodeAccessExpired  = "ACCESS_EXPIRED"
	CodeRefreshExpired = "REFRESH_EXPIRED"
	CodeRefreshInvalid = "REFRESH_INVALID"
	CodeAccessInvalid  = "ACCESS_INVALID"
	CodeNoAccessToken  = "NO_ACCESS_TOKEN"
)

// NetworkError wraps a transport-level failure (timeout, DNS, refused
// connection) where no HTTP response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError represents a 5xx response from the backend.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status %d", e.Status)
}

// APIError is a structured error response passed through to the caller.
// It carries the HTTP status and the machine-readable code and message
// decoded from the response body, when present.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error: %d: %s", e.Status, e.Message)
}

// isTerminalCode reports whether a 401 code means the session cannot be
// recovered by a token refresh.
func isTerminalCode(code string) bool {
	switch code {
	case CodeRefreshExpired, CodeRefreshInvalid, CodeAccessInvalid, CodeNoAccessToken:
		return true
	}
	return false
}
