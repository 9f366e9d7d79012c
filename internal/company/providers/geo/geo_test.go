package geo

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers/contract"
)

const banBody = `{"type":"FeatureCollection","features":[{"type":"Feature",
  "geometry":{"type":"Point","coordinates":[2.333,48.873]},
  "properties":{"label":"17 Boulevard Haussmann 75009 Paris","city":"Paris","score":0.97}}]}`

const nominatimBody = `[{"lat":"43.6961","lon":"7.2656","display_name":"8, Avenue Foch, Nice, Alpes-Maritimes, France",
  "address":{"town":"","city":"Nice"}}]`

func fakeServer(t *testing.T, path string, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "nowhere":
			_, _ = w.Write([]byte(emptyFor(path)))
		case "broken":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "throttled":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			assert.Equal(t, path, r.URL.Path)
			_, _ = w.Write([]byte(body))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func emptyFor(path string) string {
	if path == "/search/" {
		return `{"features":[]}`
	}
	return `[]`
}

func runContract(t *testing.T, provider contract.GeoProvider, id string, validate func(*models.GeoResult) error) {
	suite := &contract.ContractSuite{
		ProviderID: id,
		Provider:   provider,
		Tests: []contract.ContractTest{
			{Name: "resolves a known address", Address: "somewhere", ValidateFunc: validate},
		},
	}
	suite.Run(t)

	(&contract.EmptyResultTest{Provider: provider, Address: "nowhere"}).Run(t)

	errorTests := []contract.ErrorContractTest{
		{Name: "outage", Provider: provider, Address: "broken", ExpectedError: providers.ErrorProviderOutage, ExpectedRetry: true},
		{Name: "throttled", Provider: provider, Address: "throttled", ExpectedError: providers.ErrorRateLimited, ExpectedRetry: true},
	}
	for _, et := range errorTests {
		t.Run(et.Name, et.Run)
	}
}

func TestBANContract(t *testing.T) {
	srv := fakeServer(t, "/search/", banBody)
	runContract(t, NewBAN(srv.URL, time.Second), BANProviderID, func(r *models.GeoResult) error {
		if r.Latitude != 48.873 || r.Longitude != 2.333 {
			return errors.New("coordinates not mapped from [lon, lat]")
		}
		if r.Locality != "Paris" {
			return errors.New("city not mapped")
		}
		return nil
	})
}

func TestNominatimContract(t *testing.T) {
	srv := fakeServer(t, "/search", nominatimBody)
	provider := NewNominatim(srv.URL, "siren-search-test", time.Second, time.Millisecond)
	runContract(t, provider, NominatimProviderID, func(r *models.GeoResult) error {
		if r.Latitude != 43.6961 || r.Longitude != 7.2656 {
			return errors.New("coordinates not parsed")
		}
		if r.Locality != "Nice" {
			return errors.New("city not mapped")
		}
		return nil
	})
}

func TestNominatimSendsUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "siren-search-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "fr", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	provider := NewNominatim(srv.URL, "siren-search-test", time.Second, time.Millisecond)
	result, err := provider.Search(t.Context(), "8 AVENUE FOCH NICE")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestBANRejectsFeatureWithoutCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[]},"properties":{}}]}`))
	}))
	defer srv.Close()

	_, err := NewBAN(srv.URL, time.Second).Search(t.Context(), "x")
	assert.Equal(t, providers.ErrorBadData, providers.GetCategory(err))
}
