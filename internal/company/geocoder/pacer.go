package geocoder

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces successive geocoding calls. Wait blocks until the next call
// may start or ctx is done.
type Pacer interface {
	Wait(ctx context.Context) error
}

// RatePacer allows one call per interval. The first call goes through
// immediately. One RatePacer should be shared by every batch that hits the
// same upstream.
type RatePacer struct {
	limiter *rate.Limiter
}

// NewRatePacer creates a pacer. A non-positive interval disables pacing.
func NewRatePacer(interval time.Duration) *RatePacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &RatePacer{limiter: rate.NewLimiter(limit, 1)}
}

func (p *RatePacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
