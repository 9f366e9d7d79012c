// Package geo holds the geocoding provider clients. BAN (the national
// address base) is the primary provider and Nominatim the secondary one.
// Both return (nil, nil) when the address yields no result.
package geo

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
)

const BANProviderID = "ban"

// BAN queries api-adresse.data.gouv.fr.
type BAN struct {
	baseURL    string
	httpClient *http.Client
}

func NewBAN(baseURL string, timeout time.Duration) *BAN {
	return &BAN{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (b *BAN) ID() string {
	return BANProviderID
}

type banResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
		Properties struct {
			Label string  `json:"label"`
			City  string  `json:"city"`
			Score float64 `json:"score"`
		} `json:"properties"`
	} `json:"features"`
}

func (b *BAN) Search(ctx context.Context, address string) (*models.GeoResult, error) {
	params := url.Values{"q": {address}, "limit": {"1"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/search/?"+params.Encode(), nil)
	if err != nil {
		return nil, providers.NewProviderError(providers.ErrorInternal, BANProviderID, "build request", err)
	}

	var resp banResponse
	if err := providers.DoJSON(b.httpClient, BANProviderID, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Features) == 0 {
		return nil, nil
	}
	f := resp.Features[0]
	if len(f.Geometry.Coordinates) < 2 {
		return nil, providers.NewProviderError(providers.ErrorBadData, BANProviderID, "feature without coordinates", nil)
	}
	return &models.GeoResult{
		Latitude:  f.Geometry.Coordinates[1],
		Longitude: f.Geometry.Coordinates[0],
		Label:     f.Properties.Label,
		Locality:  f.Properties.City,
	}, nil
}
