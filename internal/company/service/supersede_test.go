package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelineg/siren-search-widget-sub000/pkg/testutil"
)

func TestSupersessor(t *testing.T) {
	t.Run("new lookup cancels the previous one of the same session", func(t *testing.T) {
		sup := NewSupersessor()
		first, releaseFirst := sup.Begin(context.Background(), "tab-1")
		second, releaseSecond := sup.Begin(context.Background(), "tab-1")

		assert.Error(t, first.Err())
		assert.True(t, Superseded(first))
		assert.NoError(t, second.Err())
		assert.Equal(t, 1, sup.InFlight())

		releaseFirst()
		assert.Equal(t, 1, sup.InFlight(), "stale release keeps the newer lookup")
		releaseSecond()
		assert.Equal(t, 0, sup.InFlight())
		assert.False(t, Superseded(second))
	})

	t.Run("sessions are independent", func(t *testing.T) {
		sup := NewSupersessor()
		a, releaseA := sup.Begin(context.Background(), "tab-1")
		defer releaseA()
		b, releaseB := sup.Begin(context.Background(), "tab-2")
		defer releaseB()

		assert.NoError(t, a.Err())
		assert.NoError(t, b.Err())
	})

	t.Run("empty session is never tracked", func(t *testing.T) {
		sup := NewSupersessor()
		ctx, release := sup.Begin(context.Background(), "")
		release()
		assert.NoError(t, ctx.Err())
		assert.Equal(t, 0, sup.InFlight())
	})
}

func TestSupersessorParentCancellation(t *testing.T) {
	sup := NewSupersessor()
	parent, cancelParent := context.WithCancel(context.Background())
	var ctx context.Context
	var release func()

	testutil.Given(t, "a lookup in flight for a session", func(t *testing.T) {
		ctx, release = sup.Begin(parent, "tab-1")
		assert.Equal(t, 1, sup.InFlight())
	})

	testutil.When(t, "the caller goes away", func(t *testing.T) {
		cancelParent()
	})

	testutil.Then(t, "the lookup is cancelled but not reported as superseded", func(t *testing.T) {
		assert.Error(t, ctx.Err())
		assert.False(t, Superseded(ctx))
	})

	testutil.And(t, "releasing it forgets the session", func(t *testing.T) {
		release()
		assert.Equal(t, 0, sup.InFlight())
	})
}
