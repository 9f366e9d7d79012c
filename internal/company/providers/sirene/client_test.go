package sirene

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
)

const establishmentBody = `{
  "etablissement": {
    "siren": "552032534",
    "nic": "00646",
    "siret": "55203253400646",
    "dateCreationEtablissement": "2013-01-01",
    "trancheEffectifsEtablissement": "41",
    "etablissementSiege": true,
    "adresseEtablissement": {
      "numeroVoieEtablissement": "17",
      "typeVoieEtablissement": "BD",
      "libelleVoieEtablissement": "HAUSSMANN",
      "codePostalEtablissement": "75009",
      "libelleCommuneEtablissement": "PARIS 9"
    },
    "periodesEtablissement": [
      {"dateFin": null, "dateDebut": "2013-01-01", "etatAdministratifEtablissement": "A",
       "enseigne1Etablissement": "DANONE SIEGE", "activitePrincipaleEtablissement": "70.10Z"},
      {"dateFin": "2012-12-31", "dateDebut": "2008-01-01", "etatAdministratifEtablissement": "A",
       "enseigne1Etablissement": "OLD", "activitePrincipaleEtablissement": "10.51A"}
    ]
  }
}`

const legalUnitBody = `{
  "uniteLegale": {
    "siren": "552032534",
    "dateCreationUniteLegale": "1955-01-01",
    "trancheEffectifsUniteLegale": "42",
    "economieSocialeSolidaireUniteLegale": "N",
    "societeMissionUniteLegale": "O",
    "periodesUniteLegale": [
      {"dateFin": null, "dateDebut": "2020-06-26", "etatAdministratifUniteLegale": "A",
       "denominationUniteLegale": "DANONE", "categorieJuridiqueUniteLegale": "5599",
       "activitePrincipaleUniteLegale": "70.10Z", "nicSiegeUniteLegale": "00646"}
    ]
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, WithAPIKey("secret"))
}

func TestGetBySiret(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/siret/55203253400646", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(apiKeyHeader))
		_, _ = w.Write([]byte(establishmentBody))
	})

	record, err := client.GetBySiret(context.Background(), "55203253400646")
	require.NoError(t, err)

	assert.Equal(t, "552032534", record.Siren)
	assert.Equal(t, "DANONE SIEGE", record.Name)
	assert.Equal(t, "70.10Z", record.ActivityCode)
	assert.Equal(t, "41", record.Workforce)
	assert.True(t, record.HeadOffice)
	assert.Empty(t, record.ClosureDate)
	assert.Equal(t, "BD", record.Address.StreetType)
	assert.Equal(t, "PARIS 9", record.Address.Locality)
}

func TestGetBySiretClosedEstablishment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"etablissement":{"siret":"55203253400018","periodesEtablissement":[
			{"dateFin":null,"dateDebut":"2019-03-31","etatAdministratifEtablissement":"F"}]}}`))
	})

	record, err := client.GetBySiret(context.Background(), "55203253400018")
	require.NoError(t, err)
	assert.Equal(t, "552032534", record.Siren)
	assert.Equal(t, "2019-03-31", record.ClosureDate)
}

func TestGetBySiren(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/siren/552032534", r.URL.Path)
		_, _ = w.Write([]byte(legalUnitBody))
	})

	record, err := client.GetBySiren(context.Background(), "552032534")
	require.NoError(t, err)
	assert.Equal(t, "DANONE", record.Name)
	assert.Equal(t, "5599", record.LegalForm)
	assert.Equal(t, "00646", record.HeadOfficeNIC)
	assert.True(t, record.MissionCompany)
	assert.False(t, record.SocialEconomy)
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		category providers.ErrorCategory
	}{
		{name: "not found", status: http.StatusNotFound, category: providers.ErrorNotFound},
		{name: "outage", status: http.StatusServiceUnavailable, category: providers.ErrorProviderOutage},
		{name: "rate limited", status: http.StatusTooManyRequests, category: providers.ErrorRateLimited},
		{name: "malformed body", status: http.StatusOK, body: `{invalid`, category: providers.ErrorBadData},
		{name: "empty record", status: http.StatusOK, body: `{}`, category: providers.ErrorBadData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := client.GetBySiren(context.Background(), "552032534")
			require.Error(t, err)
			assert.Equal(t, tt.category, providers.GetCategory(err))
		})
	}
}

func TestSearchByName(t *testing.T) {
	t.Run("maps head offices to hits", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/siret", r.URL.Path)
			assert.Equal(t, `raisonSociale:"danone" AND etablissementSiege:true`, r.URL.Query().Get("q"))
			assert.Equal(t, "5", r.URL.Query().Get("nombre"))
			_, _ = w.Write([]byte(`{"etablissements":[{"siren":"552032534","siret":"55203253400646",
				"uniteLegale":{"denominationUniteLegale":"DANONE","activitePrincipaleUniteLegale":"70.10Z","etatAdministratifUniteLegale":"A"},
				"adresseEtablissement":{"codePostalEtablissement":"75009","libelleCommuneEtablissement":"PARIS 9"}}]}`))
		})

		hits, err := client.SearchByName(context.Background(), ` "danone" `, 5)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "552032534", hits[0].Siren)
		assert.Equal(t, "DANONE", hits[0].Name)
		assert.True(t, hits[0].Active)
	})

	t.Run("no match is empty", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		hits, err := client.SearchByName(context.Background(), "zzz", 5)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}

func TestListEstablishments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "siren:552032534", r.URL.Query().Get("q"))
		assert.Equal(t, "1000", r.URL.Query().Get("nombre"))
		_, _ = w.Write([]byte(`{"etablissements":[{"siret":"55203253400646"},{"siret":"55203253400018"}]}`))
	})

	records, err := client.ListEstablishments(context.Background(), "552032534", 5000)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "55203253400646", records[0].Siret)
	assert.Equal(t, "55203253400018", records[1].Siret)
}
