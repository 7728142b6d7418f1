package session

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pteropackages/soar/pkg/client"
	"github.com/pteropackages/soar/pkg/exit"
)

// MissingAuthError is returned before any request when a scope lacks a URL or key.
type MissingAuthError struct {
	Scope   Scope
	Missing []string
}

func (e *MissingAuthError) Error() string {
	return fmt.Sprintf("missing %s %s in config", e.Scope, strings.Join(e.Missing, " and "))
}

func (e *MissingAuthError) Details() []string {
	lines := make([]string, 0, len(e.Missing))
	for _, field := range e.Missing {
		lines = append(lines, fmt.Sprintf("run 'soar config set %s.%s <value>'", e.Scope, field))
	}
	return lines
}

func (e *MissingAuthError) ExitCode() int { return exit.AuthError }

// ArgumentError reports malformed input detected before a request is made.
type ArgumentError struct {
	Message string
	Lines   []string
}

func (e *ArgumentError) Error() string { return "argument error: " + e.Message }

func (e *ArgumentError) Details() []string { return e.Lines }

func (e *ArgumentError) ExitCode() int { return exit.ArgumentError }

// NewArgumentError builds an ArgumentError with optional detail lines.
func NewArgumentError(message string, details ...string) *ArgumentError {
	return &ArgumentError{Message: message, Lines: details}
}

// NotFoundError reports a read that was expected to find a resource but got no content.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *NotFoundError) ExitCode() int { return exit.NotFound }

// APIError is one entry of the panel's structured error payload.
type APIError struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// ClientError is a 4xx response with the errors the panel reported.
type ClientError struct {
	Status int
	Errors []APIError
}

func (e *ClientError) Error() string {
	var details []string
	for _, apiErr := range e.Errors {
		if apiErr.Detail != "" {
			details = append(details, apiErr.Detail)
		}
	}
	if len(details) == 0 {
		return fmt.Sprintf("request failed with status %d %s", e.Status, http.StatusText(e.Status))
	}
	return strings.Join(details, "; ")
}

func (e *ClientError) Details() []string {
	lines := make([]string, 0, len(e.Errors))
	for _, apiErr := range e.Errors {
		if apiErr.Code == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (status %s)", apiErr.Code, apiErr.Status))
	}
	return lines
}

func (e *ClientError) ExitCode() int { return exit.ClientError }

// ServerError is any response that is neither a success nor a 4xx.
type ServerError struct {
	Status int
	// Cause is set when a success response could not be decoded.
	Cause error
}

func (e *ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API Error: status code %d received with an unreadable body: %v", e.Status, e.Cause)
	}
	return fmt.Sprintf("API Error: status code %d received", e.Status)
}

func (e *ServerError) Details() []string {
	return []string{
		"The API could not be contacted securely.",
		"Please contact a system administrator to resolve.",
	}
}

func (e *ServerError) Unwrap() error { return e.Cause }

func (e *ServerError) ExitCode() int { return exit.ServerError }

// RequestError is a transport failure; no status code was received.
type RequestError struct {
	Method string
	Path   string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s %s failed: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Details() []string {
	return []string{client.DescribeNetworkError(e.Err)}
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) ExitCode() int { return exit.ConnectionError }
