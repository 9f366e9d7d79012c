// Package providers holds what every upstream client shares: the normalized
// failure taxonomy and the HTTP status mapping.
package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/sentinel"
)

// ErrorCategory defines the normalized failure taxonomy
type ErrorCategory string

const (
	// ErrorTimeout indicates the provider took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the provider returned invalid/malformed data
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates credential or permission issues
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorProviderOutage indicates the provider is unavailable
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorNotFound indicates the requested record doesn't exist
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited indicates too many requests
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorCanceled indicates the caller abandoned the request; it says
	// nothing about the provider's health
	ErrorCanceled ErrorCategory = "canceled"

	// ErrorInternal indicates an unexpected internal error
	ErrorInternal ErrorCategory = "internal"
)

// ProviderError wraps provider failures with normalized categorization
type ProviderError struct {
	Category   ErrorCategory
	ProviderID string
	Message    string
	Underlying error
	Retryable  bool
}

func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("provider %s [%s]: %s: %v", e.ProviderID, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("provider %s [%s]: %s", e.ProviderID, e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// Is lets errors.Is match not-found and outage errors against the
// infrastructure sentinels.
func (e *ProviderError) Is(target error) bool {
	switch target {
	case sentinel.ErrNotFound:
		return e.Category == ErrorNotFound
	case sentinel.ErrUnavailable:
		return e.Category == ErrorProviderOutage || e.Category == ErrorTimeout || e.Category == ErrorRateLimited
	}
	return false
}

// NewProviderError creates a new normalized provider error
func NewProviderError(category ErrorCategory, providerID, message string, underlying error) *ProviderError {
	retryable := category == ErrorTimeout ||
		category == ErrorProviderOutage ||
		category == ErrorRateLimited

	return &ProviderError{
		Category:   category,
		ProviderID: providerID,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// IsRetryable checks if an error is worth retrying
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error
func GetCategory(err error) ErrorCategory {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrorInternal
}

// IsNotFound reports whether err means the upstream has no such record.
func IsNotFound(err error) bool {
	return GetCategory(err) == ErrorNotFound
}

// FromStatus maps a non-2xx upstream status to a ProviderError.
func FromStatus(providerID string, status int) *ProviderError {
	msg := fmt.Sprintf("unexpected status %d", status)
	switch {
	case status == http.StatusNotFound:
		return NewProviderError(ErrorNotFound, providerID, "record not found", nil)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return NewProviderError(ErrorAuthentication, providerID, msg, nil)
	case status == http.StatusTooManyRequests:
		return NewProviderError(ErrorRateLimited, providerID, msg, nil)
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return NewProviderError(ErrorTimeout, providerID, msg, nil)
	case status >= 500:
		return NewProviderError(ErrorProviderOutage, providerID, msg, nil)
	default:
		return NewProviderError(ErrorBadData, providerID, msg, nil)
	}
}

// FromTransport maps a failed round trip to a ProviderError.
func FromTransport(providerID string, err error) *ProviderError {
	if errors.Is(err, context.Canceled) {
		return NewProviderError(ErrorCanceled, providerID, "request canceled", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewProviderError(ErrorTimeout, providerID, "request timed out", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewProviderError(ErrorTimeout, providerID, "request timed out", err)
	}
	return NewProviderError(ErrorProviderOutage, providerID, "request failed", err)
}
