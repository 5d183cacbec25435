package sites

import (
	"errors"
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/msakai/hgeometry/box"
)

var (
	// ErrBadCount reports a generator asked for fewer points than its shape
	// can produce.
	ErrBadCount = errors.New("sites: too few points requested")
)

// Panic messages for option misuse (programmer errors).
const (
	panicNilRand   = "sites: WithRand(nil)"
	panicEmptyBox  = "sites: WithBounds(empty box)"
	panicNegJitter = "sites: WithJitter(amplitude < 0)"
)

// defaultSeed feeds generators that were given no explicit randomness, so
// an unseeded call is reproducible rather than varied.
const defaultSeed int64 = 1

// Options holds the tunable parameters of the generators.
type Options struct {
	// Rand is the randomness source. nil selects a fixed-seed source;
	// variation between runs is strictly opt-in.
	Rand *rand.Rand

	// Bounds is the region points are placed in.
	Bounds box.Box

	// Jitter is the half-width of the uniform perturbation added to each
	// coordinate of Ring and Grid points. Zero keeps the shapes exact.
	Jitter float64
}

// Option mutates Options before generation begins.
type Option func(*Options)

// DefaultOptions returns the generator defaults: a 100x100 canvas anchored
// at the origin, no jitter, fixed-seed randomness.
func DefaultOptions() Options {
	return Options{
		Bounds: box.New(r2.Point{}, r2.Point{X: 100, Y: 100}),
	}
}

// WithRand supplies an explicit randomness source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed derives the randomness source from seed. Equal seeds produce
// equal site sets.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithBounds places generated points inside b. Panics if b is empty.
func WithBounds(b box.Box) Option {
	if b.IsEmpty() {
		panic(panicEmptyBox)
	}
	return func(o *Options) { o.Bounds = b }
}

// WithJitter displaces each Ring and Grid coordinate by a uniform offset
// in [-amplitude, amplitude]. Panics if amplitude is negative.
func WithJitter(amplitude float64) Option {
	if amplitude < 0 {
		panic(panicNegJitter)
	}
	return func(o *Options) { o.Jitter = amplitude }
}

// newOptions applies opts over the defaults, last option winning.
func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// source resolves the randomness source, falling back to the fixed seed.
func (o Options) source() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewSource(defaultSeed))
}
