package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Result describes one Allow decision.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is zero for allowed requests.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed || !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}

type state struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// Bucket is a keyed token bucket. It is safe for concurrent use.
type Bucket struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*state

	staleAfter      time.Duration
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

type Option func(*Bucket)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Bucket) {
		if now != nil {
			b.now = now
		}
	}
}

// WithCleanupInterval sets how often idle buckets are evicted. Zero disables
// the background sweep.
func WithCleanupInterval(d time.Duration) Option {
	return func(b *Bucket) {
		b.cleanupInterval = d
	}
}

func NewBucket(cfg Config, opts ...Option) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	b := &Bucket{
		cfg:             cfg,
		now:             time.Now,
		buckets:         make(map[string]*state),
		staleAfter:      time.Hour,
		cleanupInterval: 5 * time.Minute,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.cleanupInterval > 0 {
		go b.cleanup()
	}
	return b, nil
}

// Allow takes one token from the bucket of key if one is available.
func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if key == "" {
		return Result{}, ErrEmptyKey
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	s, ok := b.buckets[key]
	if !ok {
		s = &state{tokens: b.cfg.Capacity, lastRefill: now}
		b.buckets[key] = s
	}
	b.refill(s, now)
	s.lastAccess = now

	res := Result{
		Limit:   b.cfg.Capacity,
		ResetAt: s.lastRefill.Add(b.cfg.RefillInterval),
	}
	if s.tokens > 0 {
		s.tokens--
		res.Allowed = true
	}
	res.Remaining = s.tokens
	return res, nil
}

// refill adds tokens for every whole interval since the last refill. The
// partial interval is carried over.
func (b *Bucket) refill(s *state, now time.Time) {
	intervals := int64(now.Sub(s.lastRefill) / b.cfg.RefillInterval)
	if intervals <= 0 {
		return
	}

	needed := int64((b.cfg.Capacity - s.tokens + b.cfg.RefillRate - 1) / b.cfg.RefillRate)
	if intervals >= needed {
		s.tokens = b.cfg.Capacity
		s.lastRefill = now
		return
	}

	s.tokens += int(intervals) * b.cfg.RefillRate
	s.lastRefill = s.lastRefill.Add(time.Duration(intervals) * b.cfg.RefillInterval)
}

func (b *Bucket) Reset(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.buckets, key)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (b *Bucket) Close() {
	b.stopOnce.Do(func() { close(b.stop) })
}

func (b *Bucket) cleanup() {
	ticker := time.NewTicker(b.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.removeStale()
		case <-b.stop:
			return
		}
	}
}

func (b *Bucket) removeStale() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	for key, s := range b.buckets {
		if now.Sub(s.lastAccess) > b.staleAfter {
			delete(b.buckets, key)
		}
	}
}
