package rne

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
)

const companyBody = `{
  "siren": "552032534",
  "formality": {
    "content": {
      "personneMorale": {
        "identite": {
          "entreprise": {"denomination": "DANONE", "formeJuridique": "5599", "codeApe": "7010Z", "dateImmat": "1955-01-01"},
          "description": {"objet": "Industrie alimentaire", "montantCapital": 171657400.75}
        },
        "adresseEntreprise": {"adresse": {"numVoie": "17", "typeVoie": "BD", "voie": "HAUSSMANN", "codePostal": "75009", "commune": "PARIS"}},
        "composition": {"pouvoirs": [
          {"typeDePersonne": "INDIVIDU", "roleEntreprise": "73",
           "individu": {"descriptionPersonne": {"nom": "DUPONT", "prenoms": ["Jean", "Marie"], "dateDeNaissance": "1970-01"}}},
          {"typeDePersonne": "ENTREPRISE", "roleEntreprise": "71",
           "entreprise": {"denomination": "AUDIT SA", "siren": "123456789"}}
        ]},
        "etablissementPrincipal": {"descriptionEtablissement": {"enseigne": "DANONE SIEGE", "nomCommercial": "DANONE"}},
        "observations": {"rcs": [{"dateAjout": "2020-06-26", "texte": "Adoption du statut de société à mission"}]},
        "inscriptionsOffices": [{"event": "MODIFICATION", "dateEffet": "2021-03-01", "observation": "Transfert"}]
      }
    }
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, WithToken("tok"))
}

func TestGetEntreprise(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/companies/552032534", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(companyBody))
	})

	record, err := client.GetEntreprise(context.Background(), "552032534")
	require.NoError(t, err)

	assert.Equal(t, "DANONE", record.LegalName)
	assert.Equal(t, "DANONE SIEGE", record.TradeName)
	assert.Equal(t, "DANONE", record.CommercialName)
	assert.Equal(t, "70.10Z", record.ActivityCode)
	assert.Equal(t, "Industrie alimentaire", record.Purpose)
	require.NotNil(t, record.Capital)
	assert.True(t, decimal.RequireFromString("171657400.75").Equal(*record.Capital))
	assert.Equal(t, "HAUSSMANN", record.Address.StreetName)

	require.Len(t, record.Directors, 2)
	assert.Equal(t, "DUPONT", record.Directors[0].LastName)
	assert.Equal(t, "Jean Marie", record.Directors[0].FirstNames)
	assert.Equal(t, "AUDIT SA", record.Directors[1].Company)

	require.Len(t, record.Observations, 1)
	require.Len(t, record.Registrations, 1)
	assert.Equal(t, "MODIFICATION", record.Registrations[0].Type)
}

func TestGetEntrepriseEmptyPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	record, err := client.GetEntreprise(context.Background(), "552032534")
	require.NoError(t, err)
	assert.True(t, record.IsEmpty())
	assert.Equal(t, "552032534", record.Siren)
	assert.NotNil(t, record.Directors)
}

func TestGetActes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/companies/552032534/attachments", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))
		_, _ = w.Write([]byte(`{
			"actes": [{"id": "a1", "dateDepot": "2021-03-01", "nomDocument": "statuts.pdf",
			           "typeRdd": [{"typeActe": "Statuts mis à jour", "decision": "Transfert de siège"}]}],
			"bilans": [{"id": "b1", "dateCloture": "2022-12-31", "typeBilan": "C", "confidentiality": "Public"},
			           {"id": "b2", "dateCloture": "2021-12-31", "typeBilan": "C", "confidentiality": "Confidentiel"}],
			"total": 3
		}`))
	})

	page, err := client.GetActes(context.Background(), "552032534", 0, 20)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Acts, 1)
	assert.Equal(t, "Statuts mis à jour", page.Acts[0].Type)
	assert.Equal(t, "Transfert de siège", page.Acts[0].Label)
	require.Len(t, page.Annual, 2)
	assert.False(t, page.Annual[0].Confidential)
	assert.True(t, page.Annual[1].Confidential)
}

func TestGetEntrepriseUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetEntreprise(context.Background(), "552032534")
	require.Error(t, err)
	assert.True(t, providers.IsRetryable(err))
}
