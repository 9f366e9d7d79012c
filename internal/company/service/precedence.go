package service

import (
	"strings"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/address"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
)

// Fields reported in Entity.Provenance.
const (
	FieldName         = "name"
	FieldLegalForm    = "legal_form"
	FieldActivity     = "activity_code"
	FieldCreationDate = "creation_date"
	FieldWorkforce    = "workforce_bracket"
	FieldAddress      = "address"
	FieldPurpose      = "purpose"
	FieldClosureDate  = "closure_date"
	FieldCapital      = "capital"
)

// Sources a field can be taken from.
const (
	SourceEstablishment = "establishment_registry"
	SourceLegalUnit     = "legal_unit_registry"
	SourceHeadOffice    = "head_office"
	SourceEnrichment    = "enrichment"
)

// records are the raw upstream answers for one lookup. establishment is the
// requested establishment (Siret lookups only); headOffice is fetched for
// Siren lookups. Any of them may be nil.
type records struct {
	establishment *models.EstablishmentRecord
	headOffice    *models.EstablishmentRecord
	legalUnit     *models.LegalUnitRecord
	enrichment    models.EnrichmentRecord
}

// Extractor reads one field from one source.
type Extractor struct {
	Source string
	Value  func(records) string
}

// Rule lists the extractors for a field, highest priority first.
type Rule struct {
	Field      string
	Extractors []Extractor
}

// precedence is evaluated in order per field; the first non-empty value
// wins and no other source is consulted for that field.
var precedence = []Rule{
	{Field: FieldName, Extractors: []Extractor{
		fromEstablishment(func(r *models.EstablishmentRecord) string { return r.Name }),
		fromLegalUnit(func(r *models.LegalUnitRecord) string { return r.Name }),
		fromEnrichment(func(r models.EnrichmentRecord) string { return r.TradeName }),
		fromEnrichment(func(r models.EnrichmentRecord) string { return r.CommercialName }),
		fromEnrichment(func(r models.EnrichmentRecord) string { return r.LegalName }),
	}},
	{Field: FieldLegalForm, Extractors: []Extractor{
		fromLegalUnit(func(r *models.LegalUnitRecord) string { return r.LegalForm }),
		fromEnrichment(func(r models.EnrichmentRecord) string { return r.LegalForm }),
	}},
	{Field: FieldActivity, Extractors: []Extractor{
		fromEstablishment(func(r *models.EstablishmentRecord) string { return r.ActivityCode }),
		fromLegalUnit(func(r *models.LegalUnitRecord) string { return r.ActivityCode }),
		fromEnrichment(func(r models.EnrichmentRecord) string { return r.ActivityCode }),
	}},
	{Field: FieldCreationDate, Extractors: []Extractor{
		fromEstablishment(func(r *models.EstablishmentRecord) string { return r.CreationDate }),
		fromLegalUnit(func(r *models.LegalUnitRecord) string { return r.CreationDate }),
		fromEnrichment(func(r models.EnrichmentRecord) string { return r.CreationDate }),
	}},
	{Field: FieldWorkforce, Extractors: []Extractor{
		fromEstablishment(func(r *models.EstablishmentRecord) string { return r.Workforce }),
		fromLegalUnit(func(r *models.LegalUnitRecord) string { return r.Workforce }),
	}},
	{Field: FieldAddress, Extractors: []Extractor{
		fromEstablishment(func(r *models.EstablishmentRecord) string { return joinAddress(r.Address) }),
		fromHeadOffice(func(r *models.EstablishmentRecord) string { return joinAddress(r.Address) }),
		fromEnrichment(func(r models.EnrichmentRecord) string { return joinAddress(r.Address) }),
	}},
	{Field: FieldPurpose, Extractors: []Extractor{
		fromEnrichment(func(r models.EnrichmentRecord) string { return r.Purpose }),
	}},
	{Field: FieldClosureDate, Extractors: []Extractor{
		fromEstablishment(func(r *models.EstablishmentRecord) string { return r.ClosureDate }),
		fromLegalUnit(func(r *models.LegalUnitRecord) string { return r.ClosureDate }),
	}},
}

// merged holds the winning value and source for each field.
type merged struct {
	values     map[string]string
	provenance map[string]string
}

func (m merged) get(field string) string {
	return m.values[field]
}

func applyPrecedence(rules []Rule, r records) merged {
	m := merged{
		values:     make(map[string]string, len(rules)),
		provenance: make(map[string]string, len(rules)),
	}
	for _, rule := range rules {
		for _, ex := range rule.Extractors {
			if v := strings.TrimSpace(ex.Value(r)); v != "" {
				m.values[rule.Field] = v
				m.provenance[rule.Field] = ex.Source
				break
			}
		}
	}
	return m
}

func joinAddress(a models.AddressComponents) string {
	return address.Join(a.Number, a.StreetType, a.StreetName, a.Complement, a.PostalCode, a.Locality)
}

func fromEstablishment(get func(*models.EstablishmentRecord) string) Extractor {
	return Extractor{Source: SourceEstablishment, Value: func(r records) string {
		if r.establishment == nil {
			return ""
		}
		return get(r.establishment)
	}}
}

func fromHeadOffice(get func(*models.EstablishmentRecord) string) Extractor {
	return Extractor{Source: SourceHeadOffice, Value: func(r records) string {
		if r.headOffice == nil {
			return ""
		}
		return get(r.headOffice)
	}}
}

func fromLegalUnit(get func(*models.LegalUnitRecord) string) Extractor {
	return Extractor{Source: SourceLegalUnit, Value: func(r records) string {
		if r.legalUnit == nil {
			return ""
		}
		return get(r.legalUnit)
	}}
}

func fromEnrichment(get func(models.EnrichmentRecord) string) Extractor {
	return Extractor{Source: SourceEnrichment, Value: func(r records) string {
		return get(r.enrichment)
	}}
}
