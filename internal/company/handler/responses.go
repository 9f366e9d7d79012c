package handler

import "github.com/avelineg/siren-search-widget-sub000/internal/company/models"

type SearchResult struct {
	Siren        string `json:"siren"`
	Name         string `json:"name"`
	ActivityCode string `json:"activity_code,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Locality     string `json:"locality,omitempty"`
	Active       bool   `json:"active"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

type EstablishmentsResponse struct {
	Establishments []models.Establishment `json:"establishments"`
}

// FromSearchHits maps registry hits to the search response.
func FromSearchHits(hits []models.SearchHit) SearchResponse {
	results := make([]SearchResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, SearchResult{
			Siren:        h.Siren,
			Name:         h.Name,
			ActivityCode: h.ActivityCode,
			PostalCode:   h.PostalCode,
			Locality:     h.Locality,
			Active:       h.Active,
		})
	}
	return SearchResponse{Results: results}
}
