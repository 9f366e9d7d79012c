package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/sentinel"
)

func geocoded() []models.Establishment {
	lat, lon, match := 48.8566, 2.3522, true
	return []models.Establishment{
		{Siret: "73282932000074", Address: "1 RUE DE RIVOLI 75001 PARIS", Latitude: &lat, Longitude: &lon, Provider: "ban", CityMatch: &match, Active: true},
		{Siret: "73282932000090", Address: ""},
	}
}

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		s := NewInMemoryStore()
		_, err := s.Get(ctx, "unknown")
		assert.ErrorIs(t, err, sentinel.ErrCacheMiss)
	})

	t.Run("round trip", func(t *testing.T) {
		s := NewInMemoryStore()
		require.NoError(t, s.Put(ctx, "session:abc", geocoded()))

		got, err := s.Get(ctx, "session:abc")
		require.NoError(t, err)
		assert.Equal(t, geocoded(), got)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("stored copy is isolated", func(t *testing.T) {
		s := NewInMemoryStore()
		items := geocoded()
		require.NoError(t, s.Put(ctx, "k", items))
		*items[0].Latitude = 0

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		*got[0].Longitude = 0

		again, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 48.8566, *again[0].Latitude)
		assert.Equal(t, 2.3522, *again[0].Longitude)
	})
}
