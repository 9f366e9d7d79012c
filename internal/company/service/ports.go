package service

import (
	"context"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/entity"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks BusinessRegistry,EnrichmentSource,VATValidator,Geocoder,BatchGeocoder

// BusinessRegistry is the national business registry (establishments and
// legal units).
type BusinessRegistry interface {
	GetBySiret(ctx context.Context, siret string) (*models.EstablishmentRecord, error)
	GetBySiren(ctx context.Context, siren string) (*models.LegalUnitRecord, error)
	SearchByName(ctx context.Context, query string, limit int) ([]models.SearchHit, error)
	ListEstablishments(ctx context.Context, siren string, limit int) ([]models.EstablishmentRecord, error)
}

// EnrichmentSource is the national IP office company register.
type EnrichmentSource interface {
	GetEntreprise(ctx context.Context, siren string) (*models.EnrichmentRecord, error)
	GetActes(ctx context.Context, siren string, page, size int) (*models.DocumentPage, error)
}

// VATValidator checks a VAT number with the issuing country.
type VATValidator interface {
	Check(ctx context.Context, countryCode, body string) (bool, error)
}

// Geocoder resolves one cleaned address.
type Geocoder interface {
	Resolve(ctx context.Context, cleaned, expected string) (*entity.Geocoding, error)
}

// BatchGeocoder geocodes establishment lists, cached per session key.
type BatchGeocoder interface {
	Geocode(ctx context.Context, sessionKey string, items []models.Establishment) ([]models.Establishment, error)
}

// Decoder turns codes into display labels.
type Decoder interface {
	LegalForm(code string) string
	Activity(code string) string
	Workforce(code string) string
}
