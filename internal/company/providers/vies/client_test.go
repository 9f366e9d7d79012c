package vies

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantValid bool
		wantErr   providers.ErrorCategory
	}{
		{name: "valid", status: http.StatusOK, body: `{"valid":true,"userError":"VALID"}`, wantValid: true},
		{name: "invalid", status: http.StatusOK, body: `{"valid":false,"userError":"INVALID"}`},
		{name: "member state down", status: http.StatusOK, body: `{"valid":false,"userError":"MS_UNAVAILABLE"}`, wantErr: providers.ErrorProviderOutage},
		{name: "missing validity", status: http.StatusOK, body: `{}`, wantErr: providers.ErrorBadData},
		{name: "server error", status: http.StatusInternalServerError, wantErr: providers.ErrorProviderOutage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/check-vat-number", r.URL.Path)
				var req checkRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "FR", req.CountryCode)
				assert.Equal(t, "27552032534", req.VATNumber)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			valid, err := New(srv.URL, time.Second).Check(context.Background(), "FR", "27552032534")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, providers.GetCategory(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, valid)
		})
	}
}
