package client

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
)

// DescribeNetworkError returns a one-line hint for a transport failure.
func DescribeNetworkError(err error) string {
	switch {
	case err == nil:
		return ""
	case isTimeout(err):
		return "the panel took too long to respond; check the URL or raise http.timeout"
	case isDNS(err):
		return "the panel address could not be resolved; check application.url and client.url"
	case isConnectionRefused(err):
		return "the panel refused the connection; check it is running and reachable on that port"
	case isTLS(err):
		return "a secure connection could not be established; check the panel certificate"
	default:
		return "the panel could not be reached"
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

func isDNS(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefused(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isTLS(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}
