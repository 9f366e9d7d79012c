// Package models holds the records returned by the upstream registries and
// geocoders, already mapped out of their wire formats.
package models

import (
	"github.com/shopspring/decimal"
)

// EstablishmentRecord is one establishment from the business registry.
type EstablishmentRecord struct {
	Siret        string
	Siren        string
	Name         string // establishment trade name (enseigne) when reported
	ActivityCode string
	CreationDate string
	Workforce    string
	HeadOffice   bool
	ClosureDate  string
	Address      AddressComponents
	// Latitude/Longitude are set when the registry already geolocated the
	// establishment.
	Latitude  *float64
	Longitude *float64
}

// AddressComponents are the structured parts of a postal address.
type AddressComponents struct {
	Number     string
	StreetType string
	StreetName string
	Complement string
	PostalCode string
	Locality   string
}

// LegalUnitRecord is one legal unit from the business registry.
type LegalUnitRecord struct {
	Siren          string
	Name           string
	LegalForm      string
	ActivityCode   string
	CreationDate   string
	Workforce      string
	HeadOfficeNIC  string
	ClosureDate    string
	SocialEconomy  bool // économie sociale et solidaire
	MissionCompany bool // société à mission
}

// EnrichmentRecord is the company as known by the national IP office
// register. Every field may be empty.
type EnrichmentRecord struct {
	Siren          string
	LegalName      string
	TradeName      string
	CommercialName string
	LegalForm      string
	ActivityCode   string
	CreationDate   string
	Purpose        string
	Capital        *decimal.Decimal
	Address        AddressComponents
	Directors      []Director
	Registrations  []Registration
	Observations   []Observation
}

// IsEmpty reports whether the record carries no usable data.
func (r EnrichmentRecord) IsEmpty() bool {
	return r.LegalName == "" && r.TradeName == "" && r.CommercialName == "" &&
		r.ActivityCode == "" && r.Purpose == "" && r.Capital == nil &&
		r.Address == (AddressComponents{}) && len(r.Directors) == 0
}

type Director struct {
	FirstNames string
	LastName   string
	Company    string // set when the director is itself a legal entity
	Role       string
	BirthDate  string
}

// Registration is an entry in the register's office registrations.
type Registration struct {
	Date        string
	Type        string
	Description string
}

type Observation struct {
	Date string
	Text string
}

// DocumentPage is one page of filed documents.
type DocumentPage struct {
	Acts   []Act
	Annual []AnnualAccounts
	Page   int
	Size   int
	Total  int
}

// Act is a filed legal act.
type Act struct {
	ID    string
	Date  string
	Type  string
	Label string
}

// AnnualAccounts is a filed set of yearly accounts.
type AnnualAccounts struct {
	ID           string
	ClosingDate  string
	Type         string
	Confidential bool
}

// SearchHit is a legal unit returned by a name search.
type SearchHit struct {
	Siren        string
	Name         string
	ActivityCode string
	PostalCode   string
	Locality     string
	Active       bool
}

// GeoResult is a geocoder answer for one address.
type GeoResult struct {
	Latitude  float64
	Longitude float64
	Label     string
	Locality  string
}

// Establishment is one item of a batch geocoding request or response.
type Establishment struct {
	Siret     string   `json:"siret"`
	Name      string   `json:"name,omitempty"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Provider  string   `json:"provider,omitempty"`
	CityMatch *bool    `json:"city_match,omitempty"`
	Active    bool     `json:"active"`
}

// HasCoordinates reports whether both coordinates are set.
func (e Establishment) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// CloneEstablishments deep-copies items so callers cannot mutate shared
// cache entries through the coordinate pointers.
func CloneEstablishments(items []Establishment) []Establishment {
	if items == nil {
		return nil
	}
	out := make([]Establishment, len(items))
	for i, item := range items {
		out[i] = item
		if item.Latitude != nil {
			lat := *item.Latitude
			out[i].Latitude = &lat
		}
		if item.Longitude != nil {
			lon := *item.Longitude
			out[i].Longitude = &lon
		}
		if item.CityMatch != nil {
			match := *item.CityMatch
			out[i].CityMatch = &match
		}
	}
	return out
}
