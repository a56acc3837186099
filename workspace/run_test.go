package workspace

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bucketsort/bucketarray"
	"github.com/hupe1980/bucketsort/resource"
)

func TestRunIndependentSets(t *testing.T) {
	rc := resource.NewController(resource.Config{MaxWorkers: 4})
	p := NewPool[uint8, uint32](16, 4, WithResourceController(rc))
	defer p.Close()

	var (
		mu   sync.Mutex
		seen = make(map[int]uint32)
	)

	err := Run(t.Context(), p, 32, func(_ context.Context, attempt int, set *Set[uint8, uint32]) error {
		arr := bucketarray.NewKeyValue[uint8, uint32](set.Keys[0], set.Values[0])
		defer arr.Release()

		for k := range uint32(16) {
			if err := arr.Insert(k, uint32(attempt)); err != nil {
				return err
			}
		}

		mu.Lock()
		defer mu.Unlock()
		seen[attempt] = arr.ItemValue(3, 0)
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, seen, 32)
	for attempt, v := range seen {
		assert.Equal(t, uint32(attempt), v)
	}
	assert.LessOrEqual(t, p.Created(), 4)
	assert.Equal(t, 0, p.InUse())
}

func TestRunStop(t *testing.T) {
	p := NewPool[uint8, uint16](4, 2)
	defer p.Close()

	var calls atomic.Int32
	err := Run(t.Context(), p, 100, func(_ context.Context, attempt int, _ *Set[uint8, uint16]) error {
		calls.Add(1)
		if attempt == 0 {
			return ErrStop
		}
		return nil
	})

	require.NoError(t, err)
	assert.Less(t, int(calls.Load()), 100)
}

func TestRunError(t *testing.T) {
	p := NewPool[uint8, uint16](4, 2)
	defer p.Close()

	boom := errors.New("boom")
	err := Run(t.Context(), p, 10, func(context.Context, int, *Set[uint8, uint16]) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunLeakedClaim(t *testing.T) {
	p := NewPool[uint8, uint16](4, 2)
	defer p.Close()

	err := Run(t.Context(), p, 1, func(_ context.Context, _ int, set *Set[uint8, uint16]) error {
		bucketarray.NewValue[uint8, uint32](set.Values[1])
		return nil
	})
	assert.ErrorIs(t, err, ErrSetInUse)
}

func TestRunCanceled(t *testing.T) {
	p := NewPool[uint8, uint16](4, 2)
	defer p.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := Run(ctx, p, 5, func(context.Context, int, *Set[uint8, uint16]) error {
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBudgetBelowWorkers(t *testing.T) {
	l := Layout[uint8, uint16](4, 2)
	rc := resource.NewController(resource.Config{
		MaxWorkers:       2,
		MemoryLimitBytes: l.SetBytes(),
	})
	p := NewPool[uint8, uint16](4, 2, WithResourceController(rc))
	defer p.Close()

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	var done atomic.Int32
	err := Run(ctx, p, 4, func(context.Context, int, *Set[uint8, uint16]) error {
		time.Sleep(10 * time.Millisecond)
		done.Add(1)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, int32(4), done.Load())
	assert.Equal(t, 1, p.Created())
	assert.Equal(t, l.SetBytes(), rc.MemoryUsage())
}
