// Package sirene is the client for the national business registry (INSEE
// Sirene API): establishments by SIRET, legal units by SIREN, name search and
// establishment listing.
package sirene

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
)

const (
	ProviderID = "sirene"

	apiKeyHeader = "X-INSEE-Api-Key-Integration"
	maxPageSize  = 1000
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a Sirene client rooted at baseURL
// (e.g. https://api.insee.fr/api-sirene/3.11).
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

// GetBySiret fetches one establishment.
func (c *Client) GetBySiret(ctx context.Context, siret string) (*models.EstablishmentRecord, error) {
	var resp siretResponse
	if err := c.get(ctx, "/siret/"+url.PathEscape(siret), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Establishment.Siret == "" {
		return nil, providers.NewProviderError(providers.ErrorBadData, ProviderID, "empty establishment", nil)
	}
	return resp.Establishment.toRecord(), nil
}

// GetBySiren fetches one legal unit.
func (c *Client) GetBySiren(ctx context.Context, siren string) (*models.LegalUnitRecord, error) {
	var resp sirenResponse
	if err := c.get(ctx, "/siren/"+url.PathEscape(siren), nil, &resp); err != nil {
		return nil, err
	}
	if resp.LegalUnit.Siren == "" {
		return nil, providers.NewProviderError(providers.ErrorBadData, ProviderID, "empty legal unit", nil)
	}
	return resp.LegalUnit.toRecord(), nil
}

// SearchByName runs a full-text search on legal-unit names and returns the
// head offices of the matching legal units. No match is an empty slice.
func (c *Client) SearchByName(ctx context.Context, query string, limit int) ([]models.SearchHit, error) {
	q := fmt.Sprintf(`raisonSociale:"%s" AND etablissementSiege:true`, escapeQuery(query))
	params := url.Values{"q": {q}, "nombre": {strconv.Itoa(clampLimit(limit))}}

	var resp siretListResponse
	if err := c.get(ctx, "/siret", params, &resp); err != nil {
		if providers.IsNotFound(err) {
			return []models.SearchHit{}, nil
		}
		return nil, err
	}

	hits := make([]models.SearchHit, 0, len(resp.Establishments))
	for _, e := range resp.Establishments {
		hits = append(hits, e.toSearchHit())
	}
	return hits, nil
}

// ListEstablishments returns the establishments of a legal unit in registry
// order.
func (c *Client) ListEstablishments(ctx context.Context, siren string, limit int) ([]models.EstablishmentRecord, error) {
	params := url.Values{"q": {"siren:" + siren}, "nombre": {strconv.Itoa(clampLimit(limit))}}

	var resp siretListResponse
	if err := c.get(ctx, "/siret", params, &resp); err != nil {
		return nil, err
	}

	records := make([]models.EstablishmentRecord, 0, len(resp.Establishments))
	for _, e := range resp.Establishments {
		records = append(records, *e.toRecord())
	}
	return records, nil
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
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	return providers.DoJSON(c.httpClient, ProviderID, req, out)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return 20
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}

func escapeQuery(q string) string {
	return strings.NewReplacer(`\`, ``, `"`, ``).Replace(strings.TrimSpace(q))
}
