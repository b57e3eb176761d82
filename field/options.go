// SPDX-License-Identifier: MIT
// Package: stencilkit/field
//
// options.go — functional options and deterministic defaults for Initialize.
//
// Contract:
//   • Options are functional (type Option func(*config)); later options win.
//   • WithX constructors panic only on programmer error (nil Source).
//     Out-of-range enum or halo values are NOT rejected here; Initialize
//     reports them as ErrInvalidArgument so every argument is validated in
//     one place and in a fixed order.
//   • No hidden globals: without WithSource/WithSeed, each call gets a fresh
//     Source seeded with DefaultSeed.

package field

// Option customizes a single Initialize call.
type Option func(*config)

// config aggregates all knobs consumed by Initialize.
type config struct {
	order   AxisOrder
	pattern Pattern
	halo    int
	layout  Layout
	dtype   DType
	src     *Source
}

// Defaults used when no option overrides them.
const (
	DefaultAxisOrder = ZYX
	DefaultPattern   = Random
	DefaultHalo      = 0
	DefaultLayout    = RowMajor
	DefaultDType     = Float64
)

// newConfig applies opts over the defaults in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		order:   DefaultAxisOrder,
		pattern: DefaultPattern,
		halo:    DefaultHalo,
		layout:  DefaultLayout,
		dtype:   DefaultDType,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = NewSource(DefaultSeed)
	}

	return cfg
}

// WithAxisOrder sets the logical axis order of the returned field.
func WithAxisOrder(o AxisOrder) Option {
	return func(c *config) { c.order = o }
}

// WithPattern sets the fill pattern.
func WithPattern(p Pattern) Option {
	return func(c *config) { c.pattern = p }
}

// WithHalo sets the halo width on the Y and X axes.
func WithHalo(h int) Option {
	return func(c *config) { c.halo = h }
}

// WithLayout sets the physical memory layout.
func WithLayout(l Layout) Option {
	return func(c *config) { c.layout = l }
}

// WithDType sets the element precision.
func WithDType(d DType) Option {
	return func(c *config) { c.dtype = d }
}

// WithSource draws random values from src. Sharing one Source across calls
// gives a reproducible sequence of fields. Panics on nil.
func WithSource(src *Source) Option {
	if src == nil {
		panic("field: WithSource(nil)")
	}

	return func(c *config) { c.src = src }
}

// WithSeed draws random values from a fresh Source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = NewSource(seed) }
}
