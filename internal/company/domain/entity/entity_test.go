package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/vat"
	dErrors "github.com/avelineg/siren-search-widget-sub000/pkg/domain-errors"
)

func TestBuild(t *testing.T) {
	t.Run("defaults collections and derived fields", func(t *testing.T) {
		e, err := Build(Input{Siren: "552032534"})
		require.NoError(t, err)

		assert.Equal(t, Unnamed, e.Name)
		assert.Equal(t, "FR27552032534", e.VAT)
		assert.Equal(t, vat.StatusIndeterminate, e.VATValid)
		assert.True(t, e.Active)
		assert.NotNil(t, e.Directors)
		assert.NotNil(t, e.Financials)
		assert.NotNil(t, e.Announcements)
		assert.NotNil(t, e.Labels)
		assert.NotNil(t, e.Documents)
		assert.NotNil(t, e.Facts)
		assert.NotNil(t, e.Degraded)
		assert.Nil(t, e.Coordinates)
		assert.Nil(t, e.Capital)
	})

	t.Run("closure date makes the entity inactive", func(t *testing.T) {
		e, err := Build(Input{Siren: "552032534", ClosureDate: "2020-12-31"})
		require.NoError(t, err)
		assert.False(t, e.Active)
		assert.Equal(t, "2020-12-31", e.ClosureDate)

		e, err = Build(Input{Siren: "552032534", ClosureDate: "  "})
		require.NoError(t, err)
		assert.True(t, e.Active)
		assert.Empty(t, e.ClosureDate)
	})

	t.Run("present auxiliaries are carried over", func(t *testing.T) {
		capital := decimal.RequireFromString("1000.50")
		e, err := Build(Input{
			Siren:      "552032534",
			Siret:      "55203253400646",
			Name:       "DANONE",
			RawAddress: "17 BD HAUSSMANN 75009 PARIS",
			Capital:    Present(capital),
			Geocoding: Present(Geocoding{
				Coordinates: Coordinates{Latitude: 48.87, Longitude: 2.33},
				Provider:    "ban",
				CityMatch:   true,
			}),
			VATCheck:  Present(true),
			Directors: Present([]Director{{Name: "A", Kind: "person"}, {Name: "B", Kind: "company"}}),
		})
		require.NoError(t, err)

		assert.Equal(t, "17 BOULEVARD HAUSSMANN 75009 PARIS", e.Address)
		require.NotNil(t, e.Capital)
		assert.True(t, capital.Equal(*e.Capital))
		require.NotNil(t, e.Coordinates)
		assert.Equal(t, 48.87, e.Coordinates.Latitude)
		assert.Equal(t, "ban", e.Geocoding.Provider)
		assert.Equal(t, vat.StatusValid, e.VATValid)
		assert.Equal(t, []string{"A", "B"}, []string{e.Directors[0].Name, e.Directors[1].Name})
	})

	t.Run("absent vat check stays indeterminate", func(t *testing.T) {
		e, err := Build(Input{Siren: "552032534", VATCheck: Absent[bool]()})
		require.NoError(t, err)
		assert.Equal(t, vat.StatusIndeterminate, e.VATValid)
	})
}

func TestBuildRejectsBrokenIdentifiers(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{name: "short siren", input: Input{Siren: "55203253"}},
		{name: "short siret", input: Input{Siren: "552032534", Siret: "5520325340064"}},
		{name: "siret from another siren", input: Input{Siren: "552032534", Siret: "73282932000074"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Build(tt.input)
			assert.Nil(t, e)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}

func TestBuildCopiesInputSlices(t *testing.T) {
	labels := []string{"ESS"}
	e, err := Build(Input{Siren: "552032534", Labels: labels})
	require.NoError(t, err)
	labels[0] = "changed"
	assert.Equal(t, []string{"ESS"}, e.Labels)
}

func TestEntityJSON(t *testing.T) {
	e, err := Build(Input{Siren: "552032534", Classification: Classification{ActivityCode: "10.51A"}})
	require.NoError(t, err)

	out, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Nil(t, decoded["vat_valid"])
	assert.Equal(t, "10.51A", decoded["activity_code"])
	assert.Equal(t, []any{}, decoded["directors"])
}

func TestOptional(t *testing.T) {
	p := Present(3)
	v, ok := p.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 7, Absent[int]().OrElse(7))
	assert.False(t, Absent[string]().IsPresent())
}
