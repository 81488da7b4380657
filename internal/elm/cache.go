package elm

// RenderCache forwards a render only when the state differs from the one it
// forwarded last. It is transparent apart from skipping duplicates.
type RenderCache[I, S, M any] struct {
	inner Renderer[I, S, M]
	equal func(a, b S) bool
	prev  S
	has   bool
}

// NewRenderCache wraps inner, comparing states with equal.
func NewRenderCache[I, S, M any](inner Renderer[I, S, M], equal func(a, b S) bool) *RenderCache[I, S, M] {
	if inner == nil {
		panic(precondition("NewRenderCache", "nil renderer"))
	}
	if equal == nil {
		panic(precondition("NewRenderCache", "nil equality function"))
	}
	return &RenderCache[I, S, M]{inner: inner, equal: equal}
}

// NewComparableRenderCache wraps inner, comparing states with ==.
func NewComparableRenderCache[I any, S comparable, M any](inner Renderer[I, S, M]) *RenderCache[I, S, M] {
	return NewRenderCache(inner, func(a, b S) bool { return a == b })
}

// Setup forwards to the wrapped renderer.
func (c *RenderCache[I, S, M]) Setup(input I, d Dispatcher[M]) {
	c.inner.Setup(input, d)
}

// Render forwards state unless it equals the previously forwarded state.
func (c *RenderCache[I, S, M]) Render(state S) {
	if c.has && c.equal(c.prev, state) {
		return
	}
	c.prev = state
	c.has = true
	c.inner.Render(state)
}

// Reset forgets the stored state so the next Render always forwards.
func (c *RenderCache[I, S, M]) Reset() {
	var zero S
	c.prev = zero
	c.has = false
}

// Inner returns the wrapped renderer.
func (c *RenderCache[I, S, M]) Inner() Renderer[I, S, M] {
	return c.inner
}
