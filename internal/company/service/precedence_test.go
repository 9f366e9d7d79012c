package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
)

func TestPrecedenceTableIsWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, rule := range precedence {
		require.NotEmpty(t, rule.Extractors, rule.Field)
		assert.False(t, seen[rule.Field], "duplicate rule for %s", rule.Field)
		seen[rule.Field] = true
	}
}

func TestRegistryWinsOverEnrichment(t *testing.T) {
	r := records{
		establishment: establishmentRecord(),
		legalUnit:     legalUnitRecord(),
		enrichment:    *enrichmentRecord(),
	}

	m := applyPrecedence(precedence, r)

	tests := []struct {
		field  string
		value  string
		source string
	}{
		{FieldName, "ENSEIGNE REGISTRE", SourceEstablishment},
		{FieldLegalForm, "5599", SourceLegalUnit},
		{FieldActivity, "70.10Z", SourceEstablishment},
		{FieldCreationDate, "1973-01-01", SourceEstablishment},
		{FieldWorkforce, "21", SourceEstablishment},
		{FieldAddress, "39 QUAI DU PRESIDENT ROOSEVELT 92130 ISSY-LES-MOULINEAUX", SourceEstablishment},
		{FieldPurpose, "Conseil aux entreprises", SourceEnrichment},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.value, m.get(tt.field))
			assert.Equal(t, tt.source, m.provenance[tt.field])
		})
	}
	assert.NotContains(t, m.values, FieldClosureDate)
}

func TestEnrichmentWinsWhenRegistryIsAbsent(t *testing.T) {
	m := applyPrecedence(precedence, records{enrichment: *enrichmentRecord()})

	assert.Equal(t, "EXEMPLE", m.get(FieldName))
	assert.Equal(t, "5505", m.get(FieldLegalForm))
	assert.Equal(t, "70.22Z", m.get(FieldActivity))
	assert.Equal(t, "1972-01-01", m.get(FieldCreationDate))
	assert.Equal(t, "1 RUE DE LA PAIX 75002 PARIS", m.get(FieldAddress))
	for field, source := range m.provenance {
		assert.Equal(t, SourceEnrichment, source, field)
	}
	assert.NotContains(t, m.values, FieldWorkforce)
}

func TestNameFallsThroughEnrichmentNames(t *testing.T) {
	tests := []struct {
		name     string
		record   models.EnrichmentRecord
		expected string
	}{
		{"trade name first", models.EnrichmentRecord{TradeName: "T", CommercialName: "C", LegalName: "L"}, "T"},
		{"then commercial name", models.EnrichmentRecord{CommercialName: "C", LegalName: "L"}, "C"},
		{"then legal name", models.EnrichmentRecord{LegalName: "L"}, "L"},
		{"blank values are skipped", models.EnrichmentRecord{TradeName: "  ", LegalName: "L"}, "L"},
		{"nothing", models.EnrichmentRecord{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := applyPrecedence(precedence, records{enrichment: tt.record})
			assert.Equal(t, tt.expected, m.get(FieldName))
		})
	}
}

func TestHeadOfficeAddressSitsBetweenEstablishmentAndEnrichment(t *testing.T) {
	headOffice := establishmentRecord()
	headOffice.Address.Number = "41"

	m := applyPrecedence(precedence, records{headOffice: headOffice, enrichment: *enrichmentRecord()})
	assert.Equal(t, SourceHeadOffice, m.provenance[FieldAddress])
	assert.Equal(t, "41 QUAI DU PRESIDENT ROOSEVELT 92130 ISSY-LES-MOULINEAUX", m.get(FieldAddress))

	// the head office never supplies identity fields
	assert.Equal(t, SourceEnrichment, m.provenance[FieldName])
}
