package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/sentinel"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status    int
		category  ErrorCategory
		retryable bool
	}{
		{http.StatusNotFound, ErrorNotFound, false},
		{http.StatusUnauthorized, ErrorAuthentication, false},
		{http.StatusForbidden, ErrorAuthentication, false},
		{http.StatusTooManyRequests, ErrorRateLimited, true},
		{http.StatusGatewayTimeout, ErrorTimeout, true},
		{http.StatusBadGateway, ErrorProviderOutage, true},
		{http.StatusBadRequest, ErrorBadData, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := FromStatus("sirene", tt.status)
			assert.Equal(t, tt.category, GetCategory(err))
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}

func TestFromTransport(t *testing.T) {
	err := FromTransport("ban", fmt.Errorf("dial: %w", context.DeadlineExceeded))
	assert.Equal(t, ErrorTimeout, GetCategory(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	err = FromTransport("ban", errors.New("connection refused"))
	assert.Equal(t, ErrorProviderOutage, GetCategory(err))
}

func TestFromTransportCanceledIsNotRetryable(t *testing.T) {
	err := FromTransport("rne", fmt.Errorf("Get \"https://rne.example/companies\": %w", context.Canceled))
	assert.Equal(t, ErrorCanceled, GetCategory(err))
	assert.False(t, IsRetryable(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestProviderErrorMatchesSentinels(t *testing.T) {
	notFound := fmt.Errorf("lookup: %w", FromStatus("sirene", http.StatusNotFound))
	assert.ErrorIs(t, notFound, sentinel.ErrNotFound)
	assert.NotErrorIs(t, notFound, sentinel.ErrUnavailable)
	assert.True(t, IsNotFound(notFound))

	outage := FromStatus("sirene", http.StatusServiceUnavailable)
	assert.ErrorIs(t, outage, sentinel.ErrUnavailable)
	assert.False(t, IsNotFound(outage))
}

func TestGetCategoryOfPlainError(t *testing.T) {
	assert.Equal(t, ErrorInternal, GetCategory(errors.New("boom")))
	assert.False(t, IsRetryable(errors.New("boom")))
}
