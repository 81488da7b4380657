package catch

import (
	"strconv"

	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/elm"
)

// field is the part of the scene every ball sprite looks at: the size of
// the play field and where the bar is.
type field struct {
	size Size
	bar  BarState
}

// BallSprite is the retained view of one ball. While its ball moves, it
// drives the physics: each tick it asks for the next frame and then reports
// a bar hit or a miss.
type BallSprite struct {
	state  BallState
	active bool
	d      elm.Dispatcher[BallMsg]
	field  *field
}

func newBallSprite(d elm.Dispatcher[BallMsg], f *field) *BallSprite {
	return &BallSprite{d: d, field: f}
}

// Render stores the ball to draw.
func (b *BallSprite) Render(s BallState) { b.state = s }

// SetActive shows or hides the sprite.
func (b *BallSprite) SetActive(active bool) { b.active = active }

// Active reports whether the sprite is shown.
func (b *BallSprite) Active() bool { return b.active }

// Close detaches the sprite from its dispatcher.
func (b *BallSprite) Close() {
	b.active = false
	b.d = nil
}

// State returns the last rendered ball.
func (b *BallSprite) State() BallState { return b.state }

// Tick advances the ball by dt seconds.
func (b *BallSprite) Tick(dt float64) {
	if !b.active || b.d == nil || !b.state.MovesBall {
		return
	}
	from := b.state.Position
	b.d.Dispatch(NextFrame{Dt: dt})

	// The dispatch re-rendered this sprite; a pause would have frozen it.
	if !b.active || !b.state.MovesBall {
		return
	}
	h := b.field.size.H
	if b.state.Position.Y < 0 {
		b.d.Dispatch(OnOutOfArea{})
		return
	}
	if b.path(from, h).Intersects(b.field.bar.Rect(h)) {
		b.d.Dispatch(OnCollisionBar{})
	}
}

// path returns the cells the ball crossed since from, so that a fast ball
// cannot skip over the bar row.
func (b *BallSprite) path(from core.Vec2, fieldH int) core.Rect {
	_, y0 := from.Cell(fieldH)
	x, y1 := b.state.Position.Cell(fieldH)
	top := min(y0, y1)
	return core.NewRect(x, top, 1, max(y0, y1)-top+1)
}

// Draw paints the ball; top is the screen row of the field's first row.
func (b *BallSprite) Draw(dst *core.Screen, top int) {
	x, y := b.state.Position.Cell(b.field.size.H)
	if y < 0 || y >= b.field.size.H {
		return
	}
	dst.SetColored(x, top+y, '●', core.ColorBrightYellow)
}

// BarSprite is the retained view of the paddle.
type BarSprite struct {
	state BarState
}

// Setup is a no-op; the bar sends no messages of its own.
func (b *BarSprite) Setup(_ struct{}, _ elm.Dispatcher[BarMsg]) {}

// Render stores the bar to draw.
func (b *BarSprite) Render(s BarState) { b.state = s }

// Draw paints the bar into a field of height fieldH starting at screen row top.
func (b *BarSprite) Draw(dst *core.Screen, top, fieldH int) {
	r := b.state.Rect(fieldH)
	r.Y += top
	c := core.ColorCyan
	if !b.state.CanMove {
		c = core.ColorGray
	}
	dst.DrawRect(r, '▀', c)
}

// StatusPanel shows the score and the status banner. Clicking the banner
// dispatches StatusClicked.
type StatusPanel struct {
	state  UIState
	d      elm.Dispatcher[UIMsg]
	banner core.Rect
}

// Setup keeps the dispatcher for click callbacks.
func (p *StatusPanel) Setup(_ struct{}, d elm.Dispatcher[UIMsg]) { p.d = d }

// Render stores the UI state to draw.
func (p *StatusPanel) Render(s UIState) { p.state = s }

var statusHints = map[string]string{
	ReadyMessage:    "enter or click to start",
	PausingMessage:  "enter: resume  esc: quit",
	GameOverMessage: "enter: retry  esc: quit",
}

// Draw paints the score line on row 0 and, when shown, the banner centered
// in the area below.
func (p *StatusPanel) Draw(dst *core.Screen, area core.Rect) {
	dst.DrawTextColored(1, 0, "Score: "+strconv.Itoa(p.state.Score), core.ColorWhite)
	title := "BALL CATCH"
	dst.DrawTextColored(dst.Width()-len(title)-1, 0, title, core.ColorMagenta)

	p.banner = core.Rect{}
	if !p.state.ShowMessage {
		return
	}
	text := p.state.StatusMessage
	w := len([]rune(text)) + 4
	y := area.Y + area.H/2 - 1
	p.banner = core.NewRect((dst.Width()-w)/2, y, w, 3)
	dst.DrawRect(p.banner, ' ', core.ColorDefault)
	dst.DrawBox(p.banner, core.ColorYellow)
	dst.DrawTextCentered(y+1, text, core.ColorBrightYellow)
	if hint, ok := statusHints[text]; ok {
		dst.DrawTextCentered(y+3, hint, core.ColorGray)
	}
}

// Click dispatches StatusClicked when (x, y) hits the banner.
func (p *StatusPanel) Click(x, y int) bool {
	if p.d == nil || p.banner.Empty() || !p.banner.Contains(x, y) {
		return false
	}
	p.d.Dispatch(StatusClicked{})
	return true
}
