package geo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
	pkgstrings "github.com/avelineg/siren-search-widget-sub000/pkg/platform/strings"
)

const NominatimProviderID = "nominatim"

// Nominatim queries an OpenStreetMap Nominatim instance. The public instance
// allows one request per second and requires an identifying User-Agent, so
// the client carries its own limiter.
type Nominatim struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewNominatim(baseURL, userAgent string, timeout, minInterval time.Duration) *Nominatim {
	if minInterval <= 0 {
		minInterval = time.Second
	}
	return &Nominatim{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

func (n *Nominatim) ID() string {
	return NominatimProviderID
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
	} `json:"address"`
}

func (n *Nominatim) Search(ctx context.Context, address string) (*models.GeoResult, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, providers.FromTransport(NominatimProviderID, ctx.Err())
		}
		return nil, providers.NewProviderError(providers.ErrorRateLimited, NominatimProviderID, "rate limit wait failed", err)
	}

	params := url.Values{
		"q":              {address},
		"format":         {"jsonv2"},
		"limit":          {"1"},
		"countrycodes":   {"fr"},
		"addressdetails": {"1"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, providers.NewProviderError(providers.ErrorInternal, NominatimProviderID, "build request", err)
	}
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	var places []nominatimPlace
	if err := providers.DoJSON(n.httpClient, NominatimProviderID, req, &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, nil
	}

	p := places[0]
	lat, errLat := strconv.ParseFloat(p.Lat, 64)
	lon, errLon := strconv.ParseFloat(p.Lon, 64)
	if errLat != nil || errLon != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, NominatimProviderID, "invalid coordinates", nil)
	}
	return &models.GeoResult{
		Latitude:  lat,
		Longitude: lon,
		Label:     p.DisplayName,
		Locality:  pkgstrings.FirstNonEmpty(p.Address.City, p.Address.Town, p.Address.Village, p.Address.Municipality),
	}, nil
}
