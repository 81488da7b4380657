package catch

import (
	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/elm"
)

// InputState is what the scene needs to know about the keyboard.
type InputState struct {
	BarPosition  BarPosition
	PushedEnter  bool
	PushedEscape bool
}

// InputSubscription turns per-tick input frames into InputState values and
// dispatches them only when they differ from the previous tick.
//
// Terminals report key presses but no releases, so the bar position is
// derived from the bar's current column: left and right step one column,
// center recenters, both at once keep the column.
type InputSubscription struct {
	prev InputState
	d    elm.Dispatcher[InputState]
}

// NewInputSubscription returns a subscription whose previous state is the
// centered bar with no buttons pressed.
func NewInputSubscription() *InputSubscription {
	return &InputSubscription{prev: InputState{BarPosition: BarCenter}}
}

// Setup sets the dispatcher that receives changed input states.
func (s *InputSubscription) Setup(d elm.Dispatcher[InputState]) {
	s.d = d
}

// Poll reads one frame. bar is the column the bar currently stands in.
// It reports whether a change was dispatched.
func (s *InputSubscription) Poll(frame core.InputFrame, bar BarPosition) bool {
	pos := bar
	left, right := frame.Has(core.ActionLeft), frame.Has(core.ActionRight)
	switch {
	case left && right:
	case left:
		pos = bar.Step(-1)
	case right:
		pos = bar.Step(1)
	case frame.Has(core.ActionCenter):
		pos = BarCenter
	}

	next := InputState{
		BarPosition:  pos,
		PushedEnter:  frame.Has(core.ActionConfirm),
		PushedEscape: frame.Has(core.ActionBack),
	}
	changed := next != s.prev
	s.prev = next
	if changed && s.d != nil {
		s.d.Dispatch(next)
	}
	return changed
}

// Last returns the most recent input state.
func (s *InputSubscription) Last() InputState {
	return s.prev
}
