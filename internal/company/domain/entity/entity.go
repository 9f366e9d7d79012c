// Package entity defines the unified company record assembled from the
// registries. An Entity is built once per lookup through Build, which
// enforces its invariants, and is never mutated afterwards.
package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/address"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/identifier"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/vat"
	dErrors "github.com/avelineg/siren-search-widget-sub000/pkg/domain-errors"
)

// Unnamed is the display name used when no source supplies one.
const Unnamed = "unnamed"

// Auxiliary source names reported in Degraded.
const (
	SourceEnrichment = "enrichment"
	SourceDocuments  = "documents"
	SourceVAT        = "vat_validation"
	SourceGeocoding  = "geocoding"
	SourceHeadOffice = "head_office"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoding describes how coordinates were obtained.
type Geocoding struct {
	Coordinates      Coordinates `json:"coordinates"`
	Provider         string      `json:"provider"`
	Label            string      `json:"label,omitempty"`
	Locality         string      `json:"locality,omitempty"`
	ExpectedLocality string      `json:"expected_locality,omitempty"`
	CityMatch        bool        `json:"city_match"`
}

type Director struct {
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	Kind      string `json:"kind"` // "person" or "company"
	BirthDate string `json:"birth_date,omitempty"`
}

type FinancialStatement struct {
	Year        int    `json:"year"`
	ClosingDate string `json:"closing_date"`
	Type        string `json:"type,omitempty"`
	Public      bool   `json:"public"`
	DocumentID  string `json:"document_id,omitempty"`
}

type Announcement struct {
	Date        string `json:"date,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type Document struct {
	ID    string `json:"id"`
	Date  string `json:"date,omitempty"`
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
}

type Fact struct {
	Date string `json:"date,omitempty"`
	Text string `json:"text"`
}

// Classification groups coded attributes with their decoded labels.
type Classification struct {
	LegalForm        string `json:"legal_form,omitempty"`
	LegalFormLabel   string `json:"legal_form_label,omitempty"`
	ActivityCode     string `json:"activity_code,omitempty"`
	ActivityLabel    string `json:"activity_label,omitempty"`
	CreationDate     string `json:"creation_date,omitempty"`
	WorkforceBracket string `json:"workforce_bracket,omitempty"`
	WorkforceLabel   string `json:"workforce_label,omitempty"`
}

// Entity is the merged view of one company or establishment.
type Entity struct {
	Siren string `json:"siren"`
	Siret string `json:"siret,omitempty"`
	Name  string `json:"name"`

	Classification

	Capital *decimal.Decimal `json:"capital,omitempty"`
	Purpose string           `json:"purpose,omitempty"`

	RawAddress  string       `json:"raw_address,omitempty"`
	Address     string       `json:"address,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Geocoding   *Geocoding   `json:"geocoding,omitempty"`

	VAT      string     `json:"vat"`
	VATValid vat.Status `json:"vat_valid"`

	Active      bool   `json:"active"`
	ClosureDate string `json:"closure_date,omitempty"`

	Directors     []Director           `json:"directors"`
	Financials    []FinancialStatement `json:"financials"`
	Announcements []Announcement       `json:"announcements"`
	Labels        []string             `json:"labels"`
	Documents     []Document           `json:"documents"`
	Facts         []Fact               `json:"facts"`

	// Provenance maps each precedence-resolved field to the source that won.
	Provenance map[string]string `json:"provenance"`
	// Degraded lists the auxiliary sources that failed for this lookup.
	Degraded []string `json:"degraded"`
}

// Input carries everything Build needs. Auxiliary results are Optional:
// Absent turns into an empty collection or an indeterminate value.
type Input struct {
	Siren          string
	Siret          string
	Name           string
	Classification Classification
	Purpose        string
	RawAddress     string
	ClosureDate    string
	Labels         []string

	Capital       Optional[decimal.Decimal]
	Geocoding     Optional[Geocoding]
	VATCheck      Optional[bool]
	Directors     Optional[[]Director]
	Financials    Optional[[]FinancialStatement]
	Announcements Optional[[]Announcement]
	Documents     Optional[[]Document]
	Facts         Optional[[]Fact]

	Provenance map[string]string
	Degraded   []string
}

// Build assembles an Entity and enforces its invariants.
func Build(in Input) (*Entity, error) {
	if !identifier.IsSiren(in.Siren) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "siren must be exactly 9 digits")
	}
	if in.Siret != "" {
		if !identifier.IsSiret(in.Siret) {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "siret must be exactly 14 digits")
		}
		if !strings.HasPrefix(in.Siret, in.Siren) {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "siret does not belong to siren")
		}
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = Unnamed
	}
	closure := strings.TrimSpace(in.ClosureDate)

	e := &Entity{
		Siren:          in.Siren,
		Siret:          in.Siret,
		Name:           name,
		Classification: in.Classification,
		Purpose:        strings.TrimSpace(in.Purpose),
		RawAddress:     strings.TrimSpace(in.RawAddress),
		Address:        address.Normalize(in.RawAddress),
		VAT:            vat.Compute(in.Siren),
		VATValid:       vat.StatusIndeterminate,
		Active:         closure == "",
		ClosureDate:    closure,
		Directors:      collect(in.Directors),
		Financials:     collect(in.Financials),
		Announcements:  collect(in.Announcements),
		Labels:         copyOf(in.Labels),
		Documents:      collect(in.Documents),
		Facts:          collect(in.Facts),
		Provenance:     make(map[string]string, len(in.Provenance)),
		Degraded:       copyOf(in.Degraded),
	}

	if capital, ok := in.Capital.Get(); ok {
		e.Capital = &capital
	}
	if geo, ok := in.Geocoding.Get(); ok {
		coords := geo.Coordinates
		e.Coordinates = &coords
		e.Geocoding = &geo
	}
	if valid, ok := in.VATCheck.Get(); ok && e.VAT != "" {
		e.VATValid = vat.StatusFrom(valid)
	}
	for field, source := range in.Provenance {
		e.Provenance[field] = source
	}
	return e, nil
}

func collect[T any](o Optional[[]T]) []T {
	return copyOf(o.OrElse(nil))
}

func copyOf[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
