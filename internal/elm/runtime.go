package elm

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultMaxRenders is the render ceiling used when no option overrides it.
const DefaultMaxRenders = 10

// Reducer computes the next state. It must be pure, total over the message
// set and must not dispatch.
type Reducer[S, M any] func(state S, msg M) S

// Renderer is the side-effecting consumer of state.
//
// Setup is called exactly once, before the first Render, with the runtime as
// the dispatcher. Render must treat state as read-only and may only dispatch
// from callbacks it owns (a click, a collision), never unconditionally on
// every call.
type Renderer[I, S, M any] interface {
	Setup(input I, d Dispatcher[M])
	Render(state S)
}

// Stats are cumulative counters for one runtime.
type Stats struct {
	Dispatches int // external dispatches that ran the update loop
	Queued     int // messages queued from inside a render
	Renders    int // calls to Renderer.Render
	Aborts     int // dispatches aborted by a panic
}

// Option configures a Runtime.
type Option func(*options)

type options struct {
	maxRenders int
	logger     *log.Logger
}

// WithMaxRenders sets the render ceiling for a single external dispatch.
// n must be at least 1.
func WithMaxRenders(n int) Option {
	return func(o *options) {
		o.maxRenders = n
	}
}

// WithLogger sets the logger used for debug tracing and abort reports.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Runtime owns the current state and serializes every transition through a
// non-reentrant dispatch loop.
type Runtime[I, S, M any] struct {
	state      S
	reducer    Reducer[S, M]
	renderer   Renderer[I, S, M]
	rendering  bool
	pending    []M
	maxRenders int
	logger     *log.Logger
	stats      Stats
}

// New creates a runtime, calls renderer.Setup(input, runtime) and dispatches
// first so the renderer sees a fully initialized state before any external
// event. Panics raised by that first dispatch propagate; use Start to get
// them as an error.
func New[I, S, M any](input I, first M, renderer Renderer[I, S, M], initial S, reducer Reducer[S, M], opts ...Option) *Runtime[I, S, M] {
	o := options{maxRenders: DefaultMaxRenders}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxRenders < 1 {
		panic(precondition("New", "max renders must be at least 1"))
	}
	if renderer == nil {
		panic(precondition("New", "nil renderer"))
	}
	if reducer == nil {
		panic(precondition("New", "nil reducer"))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	r := &Runtime[I, S, M]{
		state:      initial,
		reducer:    reducer,
		renderer:   renderer,
		pending:    make([]M, 0, 16),
		maxRenders: o.maxRenders,
		logger:     o.logger,
	}
	renderer.Setup(input, r)
	r.Dispatch(first)
	return r
}

// Start is New with runtime panics returned as an error.
func Start[I, S, M any](input I, first M, renderer Renderer[I, S, M], initial S, reducer Reducer[S, M], opts ...Option) (*Runtime[I, S, M], error) {
	var rt *Runtime[I, S, M]
	err := Catch(func() {
		rt = New(input, first, renderer, initial, reducer, opts...)
	})
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Dispatch applies msg. Called from inside a render it only queues msg; the
// outer call folds the queue in arrival order and renders again, until the
// queue stays empty or the render ceiling is reached, in which case it
// panics with *RenderLoopError and leaves the committed state untouched.
func (r *Runtime[I, S, M]) Dispatch(msg M) {
	if r.rendering {
		r.pending = append(r.pending, msg)
		r.stats.Queued++
		return
	}

	r.rendering = true
	completed := false
	defer func() {
		clear(r.pending)
		r.pending = r.pending[:0]
		r.rendering = false
		if !completed {
			r.stats.Aborts++
		}
	}()
	r.stats.Dispatches++

	next := r.reducer(r.state, msg)
	r.render(next)
	renders := 1

	for len(r.pending) > 0 {
		if renders >= r.maxRenders {
			r.logger.Error("render loop did not settle", "max_renders", r.maxRenders, "pending", len(r.pending))
			panic(&RenderLoopError{MaxRenders: r.maxRenders, State: r.state})
		}
		r.logger.Debug("draining messages queued during render", "count", len(r.pending), "renders", renders)
		for _, m := range r.pending {
			next = r.reducer(next, m)
		}
		clear(r.pending)
		r.pending = r.pending[:0]
		r.render(next)
		renders++
	}

	r.state = next
	completed = true
}

// TryDispatch runs Dispatch and returns the runtime's fatal errors
// (render loop, unhandled message, precondition) instead of panicking.
// Other panics are re-raised.
func (r *Runtime[I, S, M]) TryDispatch(msg M) error {
	return Catch(func() { r.Dispatch(msg) })
}

func (r *Runtime[I, S, M]) render(state S) {
	r.stats.Renders++
	r.renderer.Render(state)
}

// State returns the last committed state.
func (r *Runtime[I, S, M]) State() S {
	return r.state
}

// Rendering reports whether a dispatch is in progress.
func (r *Runtime[I, S, M]) Rendering() bool {
	return r.rendering
}

// MaxRenders returns the configured render ceiling.
func (r *Runtime[I, S, M]) MaxRenders() int {
	return r.maxRenders
}

// Stats returns the cumulative counters.
func (r *Runtime[I, S, M]) Stats() Stats {
	return r.stats
}
