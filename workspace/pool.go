package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bucketsort/bucketarray"
	"github.com/hupe1980/bucketsort/resource"
)

var (
	// ErrPoolClosed is returned by Acquire after Close.
	ErrPoolClosed = errors.New("workspace: pool closed")
	// ErrSetInUse is returned when a set is released while one of its
	// memories is still claimed by a bucket array.
	ErrSetInUse = errors.New("workspace: set still claimed by a bucket array")
	// ErrForeignSet is returned when a set is released to a pool that did
	// not hand it out.
	ErrForeignSet = errors.New("workspace: set does not belong to this pool")
)

// Set is one worker's reusable backing memory. Keys and Values each hold two
// memories so one layer can be read while the next is written.
type Set[S bucketarray.KeyStorage, V any] struct {
	Keys   [2]*bucketarray.Memory[S]
	Values [2]*bucketarray.Memory[V]

	id    uint
	owner any
}

// ID returns the pool-local identifier of the set.
func (s *Set[S, V]) ID() uint { return s.id }

// SizeBytes returns the total backing memory held by the set.
func (s *Set[S, V]) SizeBytes() int64 {
	var n int64
	for i := range 2 {
		n += s.Keys[i].SizeBytes() + s.Values[i].SizeBytes()
	}
	return n
}

func (s *Set[S, V]) claimed() bool {
	for i := range 2 {
		if s.Keys[i].Claimed() || s.Values[i].Claimed() {
			return true
		}
	}
	return false
}

// Pool recycles Sets of one fixed shape.
type Pool[S bucketarray.KeyStorage, V any] struct {
	buckets  int
	capacity int
	rc       *resource.Controller
	logger   *slog.Logger

	mu      sync.Mutex
	free    []*Set[S, V]
	inUse   *bitset.BitSet
	nextID  uint
	created int
	closed  bool
	// released is closed and replaced whenever a set returns to the free
	// list or the pool closes.
	released chan struct{}
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	rc     *resource.Controller
	logger *slog.Logger
}

// WithResourceController charges allocated sets against rc's memory budget.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}

// WithLogger sets the logger for pool events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewPool creates a pool of sets with the given bucket shape.
func NewPool[S bucketarray.KeyStorage, V any](buckets, capacity int, opts ...Option) *Pool[S, V] {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return &Pool[S, V]{
		buckets:  buckets,
		capacity: capacity,
		rc:       o.rc,
		logger:   o.logger,
		inUse:    bitset.New(0),
		released: make(chan struct{}),
	}
}

// SetSizeBytes returns the memory charged for one set.
func (p *Pool[S, V]) SetSizeBytes() int64 {
	return Layout[S, V](p.buckets, p.capacity).SetBytes()
}

// Acquire returns a set for exclusive use by the caller. A previously
// released set is reused when available; otherwise a new one is allocated
// after its size has been reserved from the resource controller. When the
// memory budget is exhausted Acquire waits until either another set is
// released to the pool, the controller frees enough memory, the pool is
// closed or ctx is done.
func (p *Pool[S, V]) Acquire(ctx context.Context) (*Set[S, V], error) {
	size := p.SetSizeBytes()
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return nil, ErrPoolClosed
		}
		if n := len(p.free); n > 0 {
			set := p.free[n-1]
			p.free = p.free[:n-1]
			p.inUse.Set(set.id)
			p.mu.Unlock()
			return set, nil
		}
		released := p.released
		p.mu.Unlock()

		err := p.reserve(ctx, size, released)
		if err == nil {
			return p.allocate(ctx, size)
		}
		if ctx.Err() != nil || !errors.Is(err, errReleased) {
			return nil, fmt.Errorf("workspace: reserve %d bytes: %w", size, err)
		}
	}
}

var errReleased = errors.New("workspace: set released")

// reserve charges size bytes to the controller. It gives up with errReleased
// as soon as released is closed.
func (p *Pool[S, V]) reserve(ctx context.Context, size int64, released <-chan struct{}) error {
	wctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	go func() {
		select {
		case <-released:
			cancel(errReleased)
		case <-wctx.Done():
		}
	}()

	if err := p.rc.AcquireMemory(wctx, size); err != nil {
		if cause := context.Cause(wctx); ctx.Err() == nil && errors.Is(cause, errReleased) {
			return errReleased
		}
		return err
	}
	return nil
}

func (p *Pool[S, V]) allocate(ctx context.Context, size int64) (*Set[S, V], error) {
	set := &Set[S, V]{owner: p}
	for i := range 2 {
		set.Keys[i] = bucketarray.NewMemory[S](p.buckets, p.capacity)
		set.Values[i] = bucketarray.NewMemory[V](p.buckets, p.capacity)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.rc.ReleaseMemory(size)
		return nil, ErrPoolClosed
	}
	set.id = p.nextID
	p.nextID++
	p.created++
	p.inUse.Set(set.id)

	p.logger.DebugContext(ctx, "workspace set allocated",
		"set", set.id,
		"bytes", size,
		"buckets", p.buckets,
		"capacity", p.capacity,
	)
	return set, nil
}

func (p *Pool[S, V]) wake() {
	close(p.released)
	p.released = make(chan struct{})
}

// Release returns set to the pool. All bucket arrays built on the set must
// have been released first.
func (p *Pool[S, V]) Release(set *Set[S, V]) error {
	if set == nil || set.owner != p {
		return ErrForeignSet
	}
	if set.claimed() {
		return ErrSetInUse
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.inUse.Test(set.id) {
		return fmt.Errorf("workspace: set %d released twice", set.id)
	}
	p.inUse.Clear(set.id)

	if p.closed {
		p.rc.ReleaseMemory(p.SetSizeBytes())
		return nil
	}
	p.free = append(p.free, set)
	p.wake()
	return nil
}

// InUse returns the number of sets currently handed out.
func (p *Pool[S, V]) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.inUse.Count())
}

// Created returns the number of sets ever allocated by the pool.
func (p *Pool[S, V]) Created() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.created
}

// Close drops all idle sets and returns their memory to the controller.
// Sets still in use are released to the controller when they come back.
func (p *Pool[S, V]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	size := p.SetSizeBytes()
	for range p.free {
		p.rc.ReleaseMemory(size)
	}
	p.logger.Debug("workspace pool closed", "idle", len(p.free), "in_use", p.inUse.Count())
	p.free = nil
	p.wake()
}
