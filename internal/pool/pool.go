// Package pool implements uniform random selection without replacement.
package pool

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmpty is returned when a pool would start with no options.
var ErrEmpty = errors.New("no options to pick from")

// Pool holds the options not yet picked in the current run.
// Duplicate options are distinct entries: they are drawn by position,
// not by value.
type Pool struct {
	remaining []string
	size      int
	rng       *rand.Rand
}

// Option configures a Pool.
type Option func(*Pool)

// WithSeed makes the draw order deterministic for a given seed.
func WithSeed(seed int64) Option {
	return func(p *Pool) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates a pool over the given options. The input slice is copied,
// so later draws never mutate the caller's data.
func New(options []string, opts ...Option) (*Pool, error) {
	if len(options) == 0 {
		return nil, ErrEmpty
	}
	p := &Pool{
		remaining: append([]string(nil), options...),
		size:      len(options),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Draw removes and returns one option chosen uniformly at random from
// the remaining pool. ok is false once the pool is exhausted.
func (p *Pool) Draw() (picked string, ok bool) {
	n := len(p.remaining)
	if n == 0 {
		return "", false
	}
	i := p.rng.Intn(n)
	picked = p.remaining[i]
	p.remaining[i] = p.remaining[n-1]
	p.remaining = p.remaining[:n-1]
	return picked, true
}

// DrawN draws up to n options in pick order. Fewer are returned when
// the pool runs out first.
func (p *Pool) DrawN(n int) []string {
	if n > len(p.remaining) {
		n = len(p.remaining)
	}
	picks := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pick, ok := p.Draw()
		if !ok {
			break
		}
		picks = append(picks, pick)
	}
	return picks
}

// DrawAll drains the pool, returning a uniform random permutation of
// the remaining options.
func (p *Pool) DrawAll() []string {
	return p.DrawN(len(p.remaining))
}

// Remaining reports how many options have not been drawn yet.
func (p *Pool) Remaining() int {
	return len(p.remaining)
}

// Size reports how many options the pool started with.
func (p *Pool) Size() int {
	return p.size
}
