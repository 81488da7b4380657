package elm

// RenderTarget is one child render target managed by a RenderFactory.
type RenderTarget[S any] interface {
	Render(state S)
	SetActive(active bool)
	Active() bool
	Close()
}

type factoryEntry[M any, T any] struct {
	target     T
	dispatcher *IndexedWrapper[M]
}

// RenderFactory renders an ordered sequence of child states onto a cache of
// child targets. Targets are created on demand and parked (deactivated)
// rather than destroyed when the sequence shrinks, so they can be reused
// when it grows again. Each target dispatches through its own
// IndexedWrapper, whose index the factory refreshes on every render.
type RenderFactory[S, M any, T RenderTarget[S]] struct {
	create     func(d Dispatcher[M]) T
	dispatcher Dispatcher[Indexed[M]]
	cache      []factoryEntry[M, T]
	ready      bool
}

// Setup supplies the target constructor and the dispatcher receiving the
// index-tagged child messages. It must be called exactly once, before Render.
func (f *RenderFactory[S, M, T]) Setup(create func(d Dispatcher[M]) T, d Dispatcher[Indexed[M]]) {
	if f.ready {
		panic(precondition("RenderFactory.Setup", "already set up"))
	}
	if create == nil {
		panic(precondition("RenderFactory.Setup", "nil target constructor"))
	}
	if d == nil {
		panic(precondition("RenderFactory.Setup", "nil dispatcher"))
	}
	f.create = create
	f.dispatcher = d
	f.cache = nil
	f.ready = true
}

// Render renders states in order.
func (f *RenderFactory[S, M, T]) Render(states []S) {
	if !f.ready {
		panic(precondition("RenderFactory.Render", "Setup was not called"))
	}

	for i, e := range f.cache {
		if i < len(states) {
			e.target.SetActive(true)
			e.dispatcher.Index = i
			e.target.Render(states[i])
			continue
		}
		// Everything after the first parked target is parked already.
		if !e.target.Active() {
			break
		}
		e.target.SetActive(false)
	}

	for i := len(f.cache); i < len(states); i++ {
		d := NewIndexedWrapper(f.dispatcher, i)
		target := f.create(d)
		f.cache = append(f.cache, factoryEntry[M, T]{target: target, dispatcher: d})
		target.SetActive(true)
		target.Render(states[i])
	}
}

// Clear closes every cached target and empties the cache. Safe to call at
// any time, including before Setup.
func (f *RenderFactory[S, M, T]) Clear() {
	for _, e := range f.cache {
		e.target.Close()
	}
	clear(f.cache)
	f.cache = f.cache[:0]
}

// Len returns the number of cached targets, active or not.
func (f *RenderFactory[S, M, T]) Len() int {
	return len(f.cache)
}

// Target returns the i-th cached target.
func (f *RenderFactory[S, M, T]) Target(i int) T {
	return f.cache[i].target
}

// Each calls fn for every active target, from the last to the first.
// Walking backwards means a child removed by a dispatch made from fn only
// shifts targets that were already visited.
func (f *RenderFactory[S, M, T]) Each(fn func(index int, target T)) {
	for i := len(f.cache) - 1; i >= 0; i-- {
		if i >= len(f.cache) {
			continue
		}
		t := f.cache[i].target
		if !t.Active() {
			continue
		}
		fn(i, t)
	}
}
