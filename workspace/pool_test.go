package workspace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bucketsort/bucketarray"
	"github.com/hupe1980/bucketsort/resource"
)

func TestLayout(t *testing.T) {
	l := Layout[uint8, uint16](4, 2)

	assert.Equal(t, 8, l.Slots())
	assert.Equal(t, 1, l.KeyBytes)
	assert.Equal(t, 2, l.ValueBytes)
	assert.Equal(t, int64(2*8*3), l.SetBytes())
}

func TestPoolAcquireRelease(t *testing.T) {
	rc := resource.NewController(resource.Config{})
	p := NewPool[uint8, uint16](4, 2, WithResourceController(rc))

	set, err := p.Acquire(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, p.InUse())
	assert.Equal(t, p.SetSizeBytes(), rc.MemoryUsage())
	assert.Equal(t, p.SetSizeBytes(), set.SizeBytes())

	require.NoError(t, p.Release(set))
	assert.Equal(t, 0, p.InUse())

	// Released sets are reused without a new reservation.
	again, err := p.Acquire(t.Context())
	require.NoError(t, err)
	assert.Same(t, set, again)
	assert.Equal(t, 1, p.Created())
	assert.Equal(t, p.SetSizeBytes(), rc.MemoryUsage())

	require.NoError(t, p.Release(again))
	assert.Error(t, p.Release(again))

	p.Close()
	assert.Equal(t, int64(0), rc.MemoryUsage())

	_, err = p.Acquire(t.Context())
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPoolReleaseWhileClaimed(t *testing.T) {
	p := NewPool[uint8, uint16](4, 2)

	set, err := p.Acquire(t.Context())
	require.NoError(t, err)

	arr := bucketarray.NewKeyValue[uint8, uint32](set.Keys[0], set.Values[0])
	assert.ErrorIs(t, p.Release(set), ErrSetInUse)

	vals := arr.DropKeyStorage()
	assert.ErrorIs(t, p.Release(set), ErrSetInUse)

	vals.Release()
	assert.NoError(t, p.Release(set))
}

func TestPoolForeignSet(t *testing.T) {
	a := NewPool[uint8, uint16](4, 2)
	b := NewPool[uint8, uint16](4, 2)

	set, err := a.Acquire(t.Context())
	require.NoError(t, err)

	assert.ErrorIs(t, b.Release(set), ErrForeignSet)
	assert.ErrorIs(t, b.Release(nil), ErrForeignSet)
}

func TestPoolMemoryBudget(t *testing.T) {
	l := Layout[uint8, uint16](4, 2)
	rc := resource.NewController(resource.Config{MemoryLimitBytes: l.SetBytes()})
	p := NewPool[uint8, uint16](4, 2, WithResourceController(rc))

	first, err := p.Acquire(t.Context())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	_, err = p.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, p.Release(first))
	p.Close()
	assert.Equal(t, int64(0), rc.MemoryUsage())

	tiny := resource.NewController(resource.Config{MemoryLimitBytes: 1})
	q := NewPool[uint8, uint16](4, 2, WithResourceController(tiny))
	_, err = q.Acquire(t.Context())
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
}

func TestPoolCloseWithSetInUse(t *testing.T) {
	rc := resource.NewController(resource.Config{})
	p := NewPool[uint8, uint16](4, 2, WithResourceController(rc))

	set, err := p.Acquire(t.Context())
	require.NoError(t, err)

	p.Close()
	assert.Equal(t, p.SetSizeBytes(), rc.MemoryUsage())

	require.NoError(t, p.Release(set))
	assert.Equal(t, int64(0), rc.MemoryUsage())
}

func TestPoolAcquireWaitsForRelease(t *testing.T) {
	l := Layout[uint8, uint16](4, 2)
	rc := resource.NewController(resource.Config{MemoryLimitBytes: l.SetBytes()})
	p := NewPool[uint8, uint16](4, 2, WithResourceController(rc))
	defer p.Close()

	first, err := p.Acquire(t.Context())
	require.NoError(t, err)

	got := make(chan *Set[uint8, uint16], 1)
	go func() {
		set, err := p.Acquire(t.Context())
		assert.NoError(t, err)
		got <- set
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, p.Release(first))

	select {
	case set := <-got:
		assert.Same(t, first, set)
	case <-time.After(2 * time.Second):
		t.Fatal("Acquire did not return the released set")
	}
	assert.Equal(t, 1, p.Created())
	assert.Equal(t, l.SetBytes(), rc.MemoryUsage())
}

func TestPoolAcquireWaitsForClose(t *testing.T) {
	l := Layout[uint8, uint16](4, 2)
	rc := resource.NewController(resource.Config{MemoryLimitBytes: l.SetBytes()})
	p := NewPool[uint8, uint16](4, 2, WithResourceController(rc))

	_, err := p.Acquire(t.Context())
	require.NoError(t, err)

	errc := make(chan error, 1)
	go func() {
		_, err := p.Acquire(t.Context())
		errc <- err
	}()

	time.Sleep(10 * time.Millisecond)
	p.Close()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, ErrPoolClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("Acquire did not observe Close")
	}
}
