// Package elm implements a small Elm Architecture runtime: a single state
// value updated by pure reducers and projected onto render sinks, with
// adapters that let child components speak their own message types.
//
// Everything here is single-threaded. Re-entrancy (a render callback that
// dispatches again) is expected and handled by the Runtime; concurrent use
// from several goroutines is not.
package elm

// Dispatcher accepts messages of type M.
type Dispatcher[M any] interface {
	Dispatch(msg M)
}

// DispatcherFunc adapts a plain function to Dispatcher.
type DispatcherFunc[M any] func(msg M)

// Dispatch calls f(msg).
func (f DispatcherFunc[M]) Dispatch(msg M) {
	f(msg)
}

// Setupper is implemented by render sinks that need a dispatcher before
// their first render.
type Setupper[M any] interface {
	Setup(d Dispatcher[M])
}

// wrapper projects A into B and forwards synchronously.
type wrapper[A, B any] struct {
	inner   Dispatcher[B]
	project func(A) B
}

func (w wrapper[A, B]) Dispatch(msg A) {
	w.inner.Dispatch(w.project(msg))
}

// Wrap presents d as a Dispatcher[A] by projecting every message with project.
func Wrap[A, B any](d Dispatcher[B], project func(A) B) Dispatcher[A] {
	return wrapper[A, B]{inner: d, project: project}
}

// SetupWrapped hands target a dispatcher that forwards its messages into d.
func SetupWrapped[A, B any](target Setupper[A], d Dispatcher[B], project func(A) B) {
	target.Setup(Wrap(d, project))
}

// Indexed tags a child message with the position of the child that sent it.
type Indexed[M any] struct {
	Index int
	Msg   M
}

// IndexedWrapper forwards child messages as Indexed pairs. Index is written
// by the owner (RenderFactory) between renders, which lets one wrapper serve
// a child whose position in the sequence moves around.
type IndexedWrapper[M any] struct {
	Index int
	inner Dispatcher[Indexed[M]]
}

// NewIndexedWrapper returns a wrapper that tags messages with index.
func NewIndexedWrapper[M any](d Dispatcher[Indexed[M]], index int) *IndexedWrapper[M] {
	return &IndexedWrapper[M]{Index: index, inner: d}
}

// Dispatch forwards Indexed{w.Index, msg}.
func (w *IndexedWrapper[M]) Dispatch(msg M) {
	w.inner.Dispatch(Indexed[M]{Index: w.Index, Msg: msg})
}

// BufferDispatcher collects messages until a real dispatcher is attached,
// then forwards directly. It covers the gap where children must be handed a
// dispatcher before the runtime that will receive their messages exists.
type BufferDispatcher[M any] struct {
	target  Dispatcher[M]
	pending []M
}

// Dispatch buffers msg, or forwards it once attached.
func (b *BufferDispatcher[M]) Dispatch(msg M) {
	if b.target == nil {
		b.pending = append(b.pending, msg)
		return
	}
	b.target.Dispatch(msg)
}

// Attach sets the destination and flushes buffered messages in order.
// Attaching twice panics.
func (b *BufferDispatcher[M]) Attach(d Dispatcher[M]) {
	if d == nil {
		panic(precondition("BufferDispatcher.Attach", "nil dispatcher"))
	}
	if b.target != nil {
		panic(precondition("BufferDispatcher.Attach", "already attached"))
	}
	b.target = d
	pending := b.pending
	b.pending = nil
	for _, msg := range pending {
		d.Dispatch(msg)
	}
}

// Pending returns the number of buffered messages.
func (b *BufferDispatcher[M]) Pending() int {
	return len(b.pending)
}
