package geocoder

import (
	"context"
	"strings"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/address"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/entity"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
)

// Resolver geocodes one cleaned address.
type Resolver interface {
	Resolve(ctx context.Context, cleaned, expected string) (*entity.Geocoding, error)
}

// Batch geocodes establishment lists one item at a time.
type Batch struct {
	resolver Resolver
	pacer    Pacer
	options
}

func NewBatch(resolver Resolver, pacer Pacer, opts ...Option) *Batch {
	return &Batch{resolver: resolver, pacer: pacer, options: newOptions(opts)}
}

// Geocode returns a copy of items with coordinates filled in where a
// provider resolved the address. Items that already have coordinates or
// have no address are skipped without waiting on the pacer.
//
// The pacer spaces items, not provider calls: when the primary provider has
// no result, the fallback provider is queried right away within the same
// slot. The Nominatim client enforces its own quota with a limiter.
//
// Cancellation is checked between items: the call in flight completes, and
// the items processed so far are returned together with ctx.Err().
func (b *Batch) Geocode(ctx context.Context, items []models.Establishment) ([]models.Establishment, error) {
	out := models.CloneEstablishments(items)
	for i := range out {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		item := &out[i]
		if item.HasCoordinates() || strings.TrimSpace(item.Address) == "" {
			continue
		}
		if err := b.pacer.Wait(ctx); err != nil {
			return out, err
		}

		geo, err := b.resolver.Resolve(context.WithoutCancel(ctx),
			address.Normalize(item.Address), address.ExpectedLocality(item.Address))
		if err != nil {
			b.logger.DebugContext(ctx, "establishment left without coordinates",
				"siret", item.Siret,
				"error", err,
			)
			continue
		}
		lat, lon, match := geo.Coordinates.Latitude, geo.Coordinates.Longitude, geo.CityMatch
		item.Latitude = &lat
		item.Longitude = &lon
		item.CityMatch = &match
		item.Provider = geo.Provider
	}
	return out, nil
}
