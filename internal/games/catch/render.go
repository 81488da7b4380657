package catch

import (
	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/elm"
)

// hudHeight is the number of screen rows above the play field.
const hudHeight = 1

// FieldSize returns the play field for a screen of w x h cells.
func FieldSize(w, h int) Size {
	return Size{W: max(w, 0), H: max(h-hudHeight, 0)}
}

// SceneRender is the render sink for the whole scene. Balls go through a
// RenderFactory, the bar and the status panel through change-filtering
// caches.
type SceneRender struct {
	balls elm.RenderFactory[BallState, BallMsg, *BallSprite]
	bar   *elm.RenderCache[struct{}, BarState, BarMsg]
	ui    *elm.RenderCache[struct{}, UIState, UIMsg]

	barSprite *BarSprite
	panel     *StatusPanel
	field     field
}

// NewSceneRender returns an unconfigured scene renderer.
func NewSceneRender() *SceneRender {
	r := &SceneRender{
		barSprite: &BarSprite{},
		panel:     &StatusPanel{},
	}
	r.bar = elm.NewComparableRenderCache[struct{}, BarState, BarMsg](r.barSprite)
	r.ui = elm.NewComparableRenderCache[struct{}, UIState, UIMsg](r.panel)
	return r
}

// Setup wires every child to d through its own message wrapper.
func (r *SceneRender) Setup(_ struct{}, d elm.Dispatcher[Msg]) {
	r.balls.Setup(
		func(bd elm.Dispatcher[BallMsg]) *BallSprite {
			return newBallSprite(bd, &r.field)
		},
		elm.Wrap(d, func(m elm.Indexed[BallMsg]) Msg {
			return WrapBallMessage{ID: m.Index, Msg: m.Msg}
		}),
	)
	r.bar.Setup(struct{}{}, elm.Wrap(d, func(m BarMsg) Msg {
		return WrapBarMessage{Msg: m}
	}))
	r.ui.Setup(struct{}{}, elm.Wrap(d, func(m UIMsg) Msg {
		return WrapUIMessage{Msg: m}
	}))
}

// Render pushes s to every child.
func (r *SceneRender) Render(s SceneState) {
	r.field = field{size: s.Canvas, bar: s.Bar}
	r.balls.Render(s.Balls)
	r.bar.Render(s.Bar)
	r.ui.Render(s.UI)
}

// Tick advances every moving ball, newest first.
func (r *SceneRender) Tick(dt float64) {
	r.balls.Each(func(_ int, b *BallSprite) {
		b.Tick(dt)
	})
}

// Draw paints the scene. Row 0 is the score line, the field starts below.
func (r *SceneRender) Draw(dst *core.Screen) {
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, dst.Height()-1, '─', core.ColorGray)
	}
	r.balls.Each(func(_ int, b *BallSprite) {
		b.Draw(dst, area.Y)
	})
	r.barSprite.Draw(dst, area.Y, r.field.size.H)
	r.panel.Draw(dst, area)
}

// Click forwards a mouse click in screen cells.
func (r *SceneRender) Click(x, y int) bool {
	return r.panel.Click(x, y)
}

// Invalidate makes the next Render redraw the bar and the panel even if
// their state did not change.
func (r *SceneRender) Invalidate() {
	r.bar.Reset()
	r.ui.Reset()
}

// Close tears down the ball sprites.
func (r *SceneRender) Close() {
	r.balls.Clear()
}

// Balls returns the number of ball sprites, shown or parked.
func (r *SceneRender) Balls() int {
	return r.balls.Len()
}
