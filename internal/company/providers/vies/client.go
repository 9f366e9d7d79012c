// Package vies validates VAT numbers against the EU VIES REST service.
package vies

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
)

const ProviderID = "vies"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client rooted at baseURL
// (e.g. https://ec.europa.eu/taxation_customs/vies/rest-api).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type checkRequest struct {
	CountryCode string `json:"countryCode"`
	VATNumber   string `json:"vatNumber"`
}

type checkResponse struct {
	Valid     *bool  `json:"valid"`
	UserError string `json:"userError"`
}

// Check asks the service whether the VAT number country+body is registered.
// The service reports member-state outages through userError, which is
// returned as a provider outage rather than an answer.
func (c *Client) Check(ctx context.Context, countryCode, body string) (bool, error) {
	payload, err := json.Marshal(checkRequest{CountryCode: countryCode, VATNumber: body})
	if err != nil {
		return false, providers.NewProviderError(providers.ErrorInternal, ProviderID, "encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check-vat-number", bytes.NewReader(payload))
	if err != nil {
		return false, providers.NewProviderError(providers.ErrorInternal, ProviderID, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp checkResponse
	if err := providers.DoJSON(c.httpClient, ProviderID, req, &resp); err != nil {
		return false, err
	}
	switch resp.UserError {
	case "", "VALID", "INVALID":
	default:
		return false, providers.NewProviderError(providers.ErrorProviderOutage, ProviderID, "service reported "+resp.UserError, nil)
	}
	if resp.Valid == nil {
		return false, providers.NewProviderError(providers.ErrorBadData, ProviderID, "missing validity", nil)
	}
	return *resp.Valid, nil
}
