package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantCode string
		wantErr  bool
	}{
		{name: "siret", input: "73282932000074", wantKind: KindSiret, wantCode: "73282932000074"},
		{name: "siren", input: "732829320", wantKind: KindSiren, wantCode: "732829320"},
		{name: "siret with spaces", input: " 732 829 320 00074 ", wantKind: KindSiret, wantCode: "73282932000074"},
		{name: "siren with dots", input: "732.829.320", wantKind: KindSiren, wantCode: "732829320"},
		{name: "name query", input: "Danone", wantKind: KindNameQuery, wantCode: "Danone"},
		{name: "mixed digits and letters is a name", input: "3M France", wantKind: KindNameQuery, wantCode: "3M France"},
		{name: "too short", input: "12345", wantErr: true},
		{name: "between lengths", input: "1234567890", wantErr: true},
		{name: "too long", input: "123456789012345", wantErr: true},
		{name: "empty", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestClassifySiretCarriesSirenPrefix(t *testing.T) {
	got, err := Classify("73282932000074")
	require.NoError(t, err)
	assert.Equal(t, Siren("732829320"), got.Siren)
	assert.Equal(t, Siret("73282932000074"), got.Siret)
	assert.Equal(t, "00074", got.Siret.NIC())
}

func TestParse(t *testing.T) {
	siren, err := ParseSiren("732 829 320")
	require.NoError(t, err)
	assert.Equal(t, "732829320", siren.String())

	_, err = ParseSiren("73282932000074")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	siret, err := ParseSiret("732-829-320-00074")
	require.NoError(t, err)
	assert.Equal(t, Siren("732829320"), siret.Siren())

	_, err = ParseSiret("ABCDEFGHIJKLMN")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "siret", KindSiret.String())
	assert.Equal(t, "siren", KindSiren.String())
	assert.Equal(t, "name", KindNameQuery.String())
}
