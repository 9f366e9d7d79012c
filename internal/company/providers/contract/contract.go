// Package contract holds reusable tests that every geocoding provider must
// pass: coordinates in range, "no result" as (nil, nil) and failures
// reported through the provider error taxonomy.
package contract

import (
	"context"
	"testing"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
)

// GeoProvider is the provider surface under contract.
type GeoProvider interface {
	ID() string
	Search(ctx context.Context, address string) (*models.GeoResult, error)
}

// ContractTest defines a lookup expected to resolve.
type ContractTest struct {
	Name         string
	Address      string
	ValidateFunc func(result *models.GeoResult) error
}

// ContractSuite is a collection of contract tests for a provider
type ContractSuite struct {
	ProviderID string
	Provider   GeoProvider
	Tests      []ContractTest
}

// Run executes all contract tests in the suite
func (s *ContractSuite) Run(t *testing.T) {
	t.Helper()
	if got := s.Provider.ID(); got != s.ProviderID {
		t.Errorf("expected provider ID %s, got %s", s.ProviderID, got)
	}
	for _, test := range s.Tests {
		t.Run(test.Name, func(t *testing.T) {
			result, err := s.Provider.Search(context.Background(), test.Address)
			if err != nil {
				t.Fatalf("provider search failed: %v", err)
			}
			if result == nil {
				t.Fatal("expected a result, got none")
			}
			if result.Latitude < -90 || result.Latitude > 90 {
				t.Errorf("latitude %f out of range", result.Latitude)
			}
			if result.Longitude < -180 || result.Longitude > 180 {
				t.Errorf("longitude %f out of range", result.Longitude)
			}
			if test.ValidateFunc != nil {
				if err := test.ValidateFunc(result); err != nil {
					t.Errorf("custom validation failed: %v", err)
				}
			}
		})
	}
}

// EmptyResultTest validates that an unknown address is (nil, nil), not an error.
type EmptyResultTest struct {
	Provider GeoProvider
	Address  string
}

func (et *EmptyResultTest) Run(t *testing.T) {
	t.Helper()
	result, err := et.Provider.Search(context.Background(), et.Address)
	if err != nil {
		t.Fatalf("expected no error for an empty result, got %v", err)
	}
	if result != nil {
		t.Errorf("expected no result, got %+v", result)
	}
}

// ErrorContractTest validates that provider errors follow the taxonomy
type ErrorContractTest struct {
	Name          string
	Provider      GeoProvider
	Address       string
	ExpectedError providers.ErrorCategory
	ExpectedRetry bool
}

// Run executes an error contract test
func (ect *ErrorContractTest) Run(t *testing.T) {
	t.Helper()
	_, err := ect.Provider.Search(context.Background(), ect.Address)
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if category := providers.GetCategory(err); category != ect.ExpectedError {
		t.Errorf("expected error category %s, got %s", ect.ExpectedError, category)
	}
	if retry := providers.IsRetryable(err); retry != ect.ExpectedRetry {
		t.Errorf("expected retryable=%v, got %v", ect.ExpectedRetry, retry)
	}
}
