package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend down")

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(opts ...Option) (*CircuitBreaker, *clock) {
	c := &clock{t: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	cb := New("test", opts...)
	cb.now = c.now
	return cb, c
}

func fail(context.Context) error { return errBackend }

func succeed(context.Context) error { return nil }

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	var transitions []string
	cb, _ := newTestBreaker(
		WithFailureThreshold(2),
		WithOnStateChange(func(name string, from, to State) {
			transitions = append(transitions, name+":"+from.String()+"->"+to.String())
		}),
	)
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, fail), errBackend)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, fail), errBackend)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.True(t, IsRejection(err))
	assert.False(t, called)

	assert.Equal(t, []string{"test:closed->open"}, transitions)
	assert.Equal(t, Counts{Calls: 2, Rejected: 1}, cb.Counts())
}

func TestBreaker_SuccessResetsFailureRun(t *testing.T) {
	cb, _ := newTestBreaker(WithFailureThreshold(2))
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	require.NoError(t, cb.Execute(ctx, succeed))
	_ = cb.Execute(ctx, fail)

	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_ProbeAfterCooldown(t *testing.T) {
	cb, c := newTestBreaker(WithFailureThreshold(1), WithCooldown(time.Minute))
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	require.Equal(t, StateOpen, cb.State())

	c.advance(59 * time.Second)
	assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrCircuitOpen)

	c.advance(time.Second)
	require.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	cb, c := newTestBreaker(WithFailureThreshold(1), WithCooldown(time.Minute))
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	c.advance(time.Minute)
	assert.ErrorIs(t, cb.Execute(ctx, fail), errBackend)
	assert.Equal(t, StateOpen, cb.State())

	c.advance(30 * time.Second)
	assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrCircuitOpen)
}

func TestBreaker_HalfOpenLimitsProbes(t *testing.T) {
	cb, c := newTestBreaker(WithFailureThreshold(1), WithSuccessThreshold(2), WithCooldown(time.Second))
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	c.advance(time.Second)

	err := cb.Execute(ctx, func(ctx context.Context) error {
		assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrTooManyRequests)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_IsFailureFiltersErrors(t *testing.T) {
	errNotFound := errors.New("not found")
	cb, _ := newTestBreaker(
		WithFailureThreshold(1),
		WithIsFailure(func(err error) bool { return !errors.Is(err, errNotFound) }),
	)

	err := cb.Execute(context.Background(), func(context.Context) error { return errNotFound })
	assert.ErrorIs(t, err, errNotFound)
	assert.Equal(t, StateClosed, cb.State())
}

func TestMirrorBreaker(t *testing.T) {
	cb := MirrorBreaker("redis", 3, time.Minute, nil)

	assert.Equal(t, "mirror:redis", cb.Name())
	assert.Equal(t, 3, cb.config.FailureThreshold)
	assert.Equal(t, time.Minute, cb.config.Cooldown)
	assert.Equal(t, StateClosed, cb.State())
}
