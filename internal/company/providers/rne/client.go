// Package rne is the client for the national industrial property office
// company register (RNE). It provides the enrichment record of a company and
// its filed documents.
package rne

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
)

const ProviderID = "rne"

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithToken sets the bearer token sent on every call.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client rooted at baseURL (e.g. https://registre-national-entreprises.inpi.fr).
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ID() string {
	return ProviderID
}

// GetEntreprise fetches the enrichment record of a legal unit.
func (c *Client) GetEntreprise(ctx context.Context, siren string) (*models.EnrichmentRecord, error) {
	var resp companyResponse
	if err := c.get(ctx, "/api/companies/"+url.PathEscape(siren), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toRecord(siren), nil
}

// GetActes fetches one page of filed acts and annual accounts.
func (c *Client) GetActes(ctx context.Context, siren string, page, size int) (*models.DocumentPage, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{"page": {strconv.Itoa(page)}, "size": {strconv.Itoa(size)}}

	var resp attachmentsResponse
	if err := c.get(ctx, "/api/companies/"+url.PathEscape(siren)+"/attachments", params, &resp); err != nil {
		return nil, err
	}
	return resp.toPage(page, size), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return providers.NewProviderError(providers.ErrorInternal, ProviderID, "build request", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return providers.DoJSON(c.httpClient, ProviderID, req, out)
}
