package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pharmahub/backend/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestRegistry(ttl time.Duration, max int) (*Registry, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	r := NewRegistry(func() *Controller {
		return NewController(new(submitterMock), fakeAddresses{})
	}, ttl, max)
	r.now = clock.Now
	return r, clock
}

func TestRegistryOpenAndGet(t *testing.T) {
	r, _ := newTestRegistry(time.Minute, 0)

	id, c, err := r.Open()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, err = r.Get(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	r.Discard(id)
	_, err = r.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistryExpiresIdleSessions(t *testing.T) {
	r, clock := newTestRegistry(time.Minute, 0)

	idle, _, err := r.Open()
	require.NoError(t, err)
	active, _, err := r.Open()
	require.NoError(t, err)

	clock.Advance(40 * time.Second)
	_, err = r.Get(active)
	require.NoError(t, err)

	clock.Advance(40 * time.Second)
	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())

	_, err = r.Get(idle)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.Get(active)
	assert.NoError(t, err)
}

func TestRegistryKeepsSubmittingSessions(t *testing.T) {
	sub := new(submitterMock)
	started := make(chan struct{})
	release := make(chan struct{})
	sub.On("CreateAccount", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(&domain.UserIdentity{ID: uuid.New()}, nil)

	clock := &fakeClock{now: time.Now()}
	r := NewRegistry(func() *Controller { return NewController(sub, fakeAddresses{}) }, time.Minute, 0)
	r.now = clock.Now

	id, c, err := r.Open()
	require.NoError(t, err)

	ctx := context.Background()
	for i, group := range validStepValues() {
		for _, values := range group {
			require.NoError(t, c.SetFields(ctx, values))
		}
		if i < StepCount()-1 {
			require.NoError(t, c.Advance())
		}
	}

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(ctx)
		done <- err
	}()
	<-started

	clock.Advance(time.Hour)
	assert.Equal(t, 0, r.Sweep())
	_, err = r.Get(id)
	assert.NoError(t, err)

	close(release)
	require.NoError(t, <-done)
}

func TestRegistryLimit(t *testing.T) {
	r, clock := newTestRegistry(time.Minute, 2)

	_, _, err := r.Open()
	require.NoError(t, err)
	_, _, err = r.Open()
	require.NoError(t, err)

	_, _, err = r.Open()
	assert.ErrorIs(t, err, ErrTooManySessions)

	clock.Advance(2 * time.Minute)
	_, _, err = r.Open()
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryRunSweeperStops(t *testing.T) {
	r, _ := newTestRegistry(time.Nanosecond, 0)
	_, _, err := r.Open()
	require.NoError(t, err)
	r.now = func() time.Time { return time.Now().Add(time.Hour) }

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		r.RunSweeper(ctx, time.Millisecond, nil)
		close(stopped)
	}()

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
